// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/cmd/config"
	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/cmdutil"
	"github.com/rcgen/cli/internal/prompt"
)

// Options customise the root command. Zero values select the terminal
// prompter and the OS file system.
type Options struct {
	Prompter prompt.Prompter
	Fs       afero.Fs
}

// NewRootCmd creates the root command for the rcg CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command with injected collaborators.
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	if opts.Prompter == nil {
		opts.Prompter = prompt.NewTerminal()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	gc := &cmdtypes.GlobalConfig{}
	var gf globalFlags
	var gen cmdutil.GenerateFlags

	rootCmd := &cobra.Command{
		Use:   "rcg [components...]",
		Short: "Generate React components",
		Long: `rcg generates React components.

For every component name it creates <path>/<name>/ containing a component
file, an optional stylesheet and an optional test file. Missing names and
options are asked for interactively.

Examples:
  # Ask for everything
  rcg

  # Generate three components, asking for language and files
  rcg Menu Button Slider

  # Generate without prompts into src/components
  rcg Card -p src/components -l tsx -s scss -f component,stylesheet,test

  # Create empty files
  rcg Card --no-template`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, gc, gf, &gen)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(c, gc, &gen, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&gf.config, "config", "", "Path to config file (env: RCG_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&gf.timestamps, "timestamps", true, "Show timestamps in log output")
	gen.AddTo(rootCmd)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(config.NewConfigCmd(gc))

	return rootCmd
}
