package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gtunnel-site/internal/clipboard"
	"gtunnel-site/internal/config"
	"gtunnel-site/internal/tui"
	"gtunnel-site/internal/util"
)

// newClipboard is swapped out in tests.
var newClipboard = clipboard.New

type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "gtunnel-site",
		Short: "gTunnel landing page in the terminal",
		Long: `gtunnel-site renders the gTunnel landing page as a terminal UI.

The navigation bar turns opaque once the page is scrolled past 50px and the
install command can be copied to the clipboard with a single key.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLanding(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./site.yaml or $HOME/.gtunnel-site/site.yaml)")
	flags.Bool("no-color", false, "disable colors")
	flags.String("log-level", "", "log level (trace|debug|info|warn|error)")
	_ = a.v.BindPFlag("ui.no_color", flags.Lookup("no-color"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(
		newLandingCmd(a),
		newRenderCmd(a),
		newCopyCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load(a.v, a.cfgFile, a.cfgFile != "")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	return nil
}

func (a *app) logger(cmd *cobra.Command, interactive bool) (zerolog.Logger, func() error, error) {
	logger, closeFn, err := util.SetupLogging(a.cfg.Log, interactive, cmd.ErrOrStderr())
	if err != nil {
		return logger, closeFn, fmt.Errorf("setup logging: %w", err)
	}
	return logger, closeFn, nil
}

func (a *app) tuiOptions(logger *zerolog.Logger, cb clipboard.Writer) tui.Options {
	return tui.Options{
		InstallCommand: a.cfg.InstallCommand,
		Clipboard:      cb,
		CellHeight:     a.cfg.UI.CellHeight,
		NoColor:        a.cfg.UI.NoColor,
		AltScreen:      a.cfg.UI.AltScreen,
		Mouse:          a.cfg.UI.Mouse,
		Logger:         logger,
	}
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
