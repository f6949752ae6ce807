package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gtunnel-site/internal/tui"
)

// runTUI is swapped out in tests.
var runTUI = tui.Run

func newLandingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "landing",
		Short: "Show the interactive landing page (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLanding(cmd)
		},
	}
}

func (a *app) runLanding(cmd *cobra.Command) error {
	logger, closeLog, err := a.logger(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	// The renderer owns stdout; OSC 52 sequences go to the same terminal
	// through stderr so the two never interleave.
	cb, err := newClipboard(a.cfg.Clipboard.Mode, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	logger.Debug().Str("clipboard", a.cfg.Clipboard.Mode).Msg("starting landing page")
	if err := runTUI(cmd.Context(), a.tuiOptions(&logger, cb)); err != nil {
		return fmt.Errorf("run landing page: %w", err)
	}
	return nil
}
