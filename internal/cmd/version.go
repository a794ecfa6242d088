package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show rcg version information.

Displays the CLI version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.GetInfo().String())
			return nil
		},
	}
}
