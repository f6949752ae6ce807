package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"gtunnel-site/internal/clipboard"
	"gtunnel-site/internal/site"
	"gtunnel-site/internal/tui/state"
)

const (
	TextLogFormat = "text"
	JSONLogFormat = "json"

	envPrefix      = "gtunnel_site"
	configName     = "site"
	defaultLogFile = ".gtunnel-site/logs/site.log"
)

// Config is the runtime configuration of the landing page program.
type Config struct {
	InstallCommand string
	Clipboard      ClipboardConfig
	UI             UIConfig
	Log            LogConfig
}

type ClipboardConfig struct {
	Mode string // auto | system | osc52
}

type UIConfig struct {
	CellHeight int
	AltScreen  bool
	Mouse      bool
	NoColor    bool
}

type LogConfig struct {
	Level  zerolog.Level
	Format string
	File   string // empty logs to stderr
}

// Load reads the configuration into v. path is a config file when isFile is
// set, otherwise a directory searched for site.yaml; an empty path searches
// the working directory and $HOME/.gtunnel-site. A missing config file is
// not an error. Environment variables prefixed GTUNNEL_SITE_ override file
// values (ui.cell_height -> GTUNNEL_SITE_UI_CELL_HEIGHT).
func Load(v *viper.Viper, path string, isFile bool) (*Config, error) {
	if isFile {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		if path == "" {
			v.AddConfigPath(".")
			v.AddConfigPath("$HOME/.gtunnel-site")
		} else {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("install_command", site.InstallCommand)
	v.SetDefault("clipboard.mode", clipboard.ModeAuto)
	v.SetDefault("ui.cell_height", state.DefaultCellHeight)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", TextLogFormat)
	v.SetDefault("log.file", defaultLogFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if isFile || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	level, err := zerolog.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("parse log.level: %w", err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	format := strings.ToLower(v.GetString("log.format"))
	switch format {
	case TextLogFormat, JSONLogFormat:
	default:
		return nil, fmt.Errorf("invalid log.format %q (want %s|%s)", format, TextLogFormat, JSONLogFormat)
	}

	mode := strings.ToLower(v.GetString("clipboard.mode"))
	switch mode {
	case clipboard.ModeAuto, clipboard.ModeSystem, clipboard.ModeOSC52:
	default:
		return nil, fmt.Errorf("invalid clipboard.mode %q (want auto|system|osc52)", mode)
	}

	cell := v.GetInt("ui.cell_height")
	if cell <= 0 {
		return nil, fmt.Errorf("ui.cell_height must be positive, got %d", cell)
	}

	cmd := strings.TrimSpace(v.GetString("install_command"))
	if cmd == "" {
		return nil, errors.New("install_command must not be empty")
	}

	return &Config{
		InstallCommand: cmd,
		Clipboard:      ClipboardConfig{Mode: mode},
		UI: UIConfig{
			CellHeight: cell,
			AltScreen:  v.GetBool("ui.alt_screen"),
			Mouse:      v.GetBool("ui.mouse"),
			NoColor:    v.GetBool("ui.no_color"),
		},
		Log: LogConfig{
			Level:  level,
			Format: format,
			File:   v.GetString("log.file"),
		},
	}, nil
}
