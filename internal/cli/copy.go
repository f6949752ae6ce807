package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gtunnel-site/internal/tui/copyfeedback"
)

func newCopyCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the install command to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := a.logger(cmd, false)
			if err != nil {
				return err
			}
			defer closeLog()

			cb, err := newClipboard(a.cfg.Clipboard.Mode, cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("clipboard: %w", err)
			}

			w := copyfeedback.New(cb, a.cfg.InstallCommand, copyfeedback.WithLogger(logger))
			defer w.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			w.RequestCopy(ctx)
			if !w.Copied() {
				return errors.New("could not copy the install command")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n%s\n", w.Icon(), w.Label(), w.Text())
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "clipboard write timeout")
	return cmd
}
