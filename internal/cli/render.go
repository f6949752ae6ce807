package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gtunnel-site/internal/tui"
)

func newRenderCmd(a *app) *cobra.Command {
	var width, height, offset int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one frame of the landing page",
		Long: `Print one frame of the landing page scrolled to --offset pixels.

Useful for checking how the navigation bar looks on either side of the
scroll threshold without starting the interactive program.`,
		Example: "  gtunnel-site render --offset 64 --width 120",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return errors.New("--width and --height must be positive")
			}
			if offset < 0 {
				return errors.New("--offset must not be negative")
			}

			logger, closeLog, err := a.logger(cmd, false)
			if err != nil {
				return err
			}
			defer closeLog()

			o := a.tuiOptions(&logger, nil)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.Render(o, width, height, offset))
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "terminal width in columns")
	cmd.Flags().IntVar(&height, "height", 40, "terminal height in rows")
	cmd.Flags().IntVar(&offset, "offset", 0, "scroll offset in pixels")
	return cmd
}
