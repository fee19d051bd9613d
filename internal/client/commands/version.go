package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set via ldflags during release builds:
//
//	-ldflags "-X rlexport/internal/client/commands.version=v1.2.0 ..."
//
//nolint:gochecknoglobals // Set by the build system.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// buildVersion returns the version string used for cobra's --version flag.
func buildVersion() string {
	return version
}

// NewVersionCmd creates and returns the version command.
func NewVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "rlexport %s (commit %s, built %s)\n", version, commit, buildTime)
			return err
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")

	return cmd
}
