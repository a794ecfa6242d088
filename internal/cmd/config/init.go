package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/cmdutil"
	"github.com/rcgen/cli/internal/config"
	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
)

const configHeader = `# rcg configuration.
# Flags and RCG_* environment variables take precedence over these values.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the rcg configuration.

Writes ~/.rcg/config.yaml (or the file named by --config / RCG_CONFIG)
with the default settings:
  componentsPath   directory components are generated into
  language         preselected language (jsx, tsx)
  stylesheet       preselected stylesheet (css, scss, sass)
  template         fill files from templates
  checkExisting    reject names of existing components

Examples:
  # Initialize configuration
  rcg config init

  # Overwrite existing configuration
  rcg config init --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInit(gc, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false,
		"Overwrite existing configuration")

	return c
}

func runConfigInit(gc *cmdtypes.GlobalConfig, force bool) error {
	path := gc.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigFile()
		if err != nil {
			return cmdutil.Exit("initializing configuration", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
		}
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return cmdutil.Exit("initializing configuration", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.Exit("initializing configuration", fmt.Errorf("checking %s: %w", path, err))
	}
	if exists && !force {
		return cmdutil.Exit("initializing configuration", &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.Exit("initializing configuration", fmt.Errorf("encoding default configuration: %w", err))
	}

	// Create directories with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.Exit("initializing configuration", oerrors.NewWriteError(filepath.Dir(path), err))
	}

	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o600); err != nil {
		return cmdutil.Exit("initializing configuration", oerrors.NewWriteError(path, err))
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	return nil
}
