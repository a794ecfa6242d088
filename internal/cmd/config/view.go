package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/cmdutil"
	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
)

// NewConfigViewCmd creates the config view command.
func NewConfigViewCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Show the effective configuration.

The table format lists every resolved value with its source
(flag, env, config or default). The yaml and json formats print
the merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigView(gc, format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runConfigView(gc *cmdtypes.GlobalConfig, format string) error {
	f, ok := output.ParseOutputFormat(format)
	if !ok {
		return cmdutil.Exit("viewing configuration", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format: %s", format),
			"",
			fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
		))
	}

	switch f {
	case output.FormatYAML:
		data, err := yaml.Marshal(gc.Config)
		if err != nil {
			return cmdutil.Exit("viewing configuration", err)
		}
		output.Print(string(data))

	case output.FormatJSON:
		data, err := json.MarshalIndent(gc.Config, "", "  ")
		if err != nil {
			return cmdutil.Exit("viewing configuration", err)
		}
		output.Println(string(data))

	default:
		output.Println(configTable(gc).String())
	}

	return nil
}

func configTable(gc *cmdtypes.GlobalConfig) *output.Table {
	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	if gc.Resolved != nil {
		for _, v := range gc.Resolved.Values() {
			tbl.Row(v.Key, v.Value, string(v.Source))
		}
	}
	if gc.Config != nil {
		tbl.Row("template", strconv.FormatBool(gc.Config.TemplatesEnabled()), "-")
		tbl.Row("checkExisting", strconv.FormatBool(gc.Config.CheckExistingEnabled()), "-")
		if gc.Config.Log.Timestamps != nil {
			tbl.Row("log.timestamps", strconv.FormatBool(*gc.Config.Log.Timestamps), "-")
		}
	}
	return tbl
}
