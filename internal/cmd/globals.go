package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/cmdutil"
	"github.com/rcgen/cli/internal/config"
	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/version"
)

type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// initializeGlobals sets up logging, loads the config file and resolves
// every setting into gc.
func initializeGlobals(c *cobra.Command, gc *cmdtypes.GlobalConfig, gf globalFlags, gen *cmdutil.GenerateFlags) error {
	cfg, loadErr := config.NewLoader().Load(gf.config)

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{Verbose: gf.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(gf.timestamps)
	} else if cfg != nil && cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	info := version.GetInfo()
	output.Debug("rcg started", "version", info.Version, "commit", info.GitCommit)

	if loadErr != nil {
		return cmdutil.Exit("loading configuration", loadErr)
	}

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:     gf.config,
		PathFlag:       gen.Path,
		LanguageFlag:   gen.Language,
		StylesheetFlag: gen.Stylesheet,
		Config:         cfg,
	})
	if err != nil {
		return cmdutil.Exit("resolving configuration", err)
	}
	config.LogResolvedValues(resolved.Values())

	if err := config.Validate(cfg); err != nil {
		return cmdutil.Exit("invalid configuration", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: resolved.ConfigPath.Value,
			Hint:     "Fix the config file or recreate it with 'rcg config init --force'.",
			Cause:    oerrors.ErrValidation,
		})
	}

	gc.Config = cfg.WithDefaults()
	gc.Resolved = resolved
	gc.ConfigPath = resolved.ConfigPath.Value
	gc.Verbose = gf.verbose

	return nil
}
