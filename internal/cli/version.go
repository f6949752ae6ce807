package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X gtunnel-site/internal/cli.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Printing the version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			info := GetVersionInfo()
			out := cmd.OutOrStdout()

			switch output {
			case "json":
				b, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal version info: %w", err)
				}
				fmt.Fprintln(out, string(b))
			case "short":
				fmt.Fprintln(out, info.Version)
			case "", "default":
				fmt.Fprintf(out, "gtunnel-site\n")
				fmt.Fprintf(out, "Version:    %s\n", info.Version)
				fmt.Fprintf(out, "Git Commit: %s\n", info.GitCommit)
				fmt.Fprintf(out, "Build Date: %s\n", info.BuildDate)
				fmt.Fprintf(out, "Go Version: %s\n", info.GoVersion)
			default:
				return fmt.Errorf("unknown output format %q (want default|json|short)", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default", "Output format. One of: default|json|short")
	return cmd
}
