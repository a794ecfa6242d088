// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the rcg CLI.`,
	}

	c.AddCommand(NewConfigInitCmd(gc))
	c.AddCommand(NewConfigViewCmd(gc))

	return c
}
