package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gtunnel-site/internal/config"
)

const logPrefix = "gtunnel-site"

// NewLogger builds a logger writing to w in the given format.
func NewLogger(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format != config.JSONLogFormat {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetupLogging installs the global logger. A full screen program owns the
// terminal, so when tui is set and a log file is configured the output goes
// to that file (opened through tea.LogToFile, which also captures the
// standard library logger). The returned func closes the file.
func SetupLogging(cfg config.LogConfig, tui bool, stderr io.Writer) (zerolog.Logger, func() error, error) {
	closer := func() error { return nil }
	out := stderr

	if tui {
		if cfg.File == "" {
			out = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
				return zerolog.Nop(), closer, fmt.Errorf("create log dir: %w", err)
			}
			f, err := tea.LogToFile(cfg.File, logPrefix)
			if err != nil {
				return zerolog.Nop(), closer, fmt.Errorf("open log file: %w", err)
			}
			out = f
			closer = f.Close
		}
	}

	logger := NewLogger(out, cfg.Level, cfg.Format)
	log.Logger = logger
	return logger, closer, nil
}
