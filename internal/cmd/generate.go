package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/cmdtypes"
	"github.com/rcgen/cli/internal/cmdutil"
	"github.com/rcgen/cli/internal/component"
	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/prompt"
	"github.com/rcgen/cli/internal/templates"
)

// runGenerate collects the generation plan and writes the components.
func runGenerate(c *cobra.Command, gc *cmdtypes.GlobalConfig, gen *cmdutil.GenerateFlags, args []string, opts Options) error {
	ctx := c.Context()

	presets, err := gen.Presets()
	if err != nil {
		return cmdutil.Exit("invalid flags", oerrors.NewValidationError(err.Error(), "", "Run 'rcg --help' for valid values."))
	}

	defaults, err := resolveDefaults(gc)
	if err != nil {
		return cmdutil.Exit("invalid defaults", oerrors.NewValidationError(err.Error(), "", "Check RCG_LANGUAGE and RCG_STYLESHEET."))
	}

	if _, terminal := opts.Prompter.(*prompt.Terminal); terminal && needsPrompt(args, presets) && !output.IsInteractive() {
		output.Warn("not running in a terminal; pass component names with --language, --stylesheet and --files to skip prompts")
	}

	checkExisting := gc.Config.CheckExistingEnabled()
	if c.Flags().Changed("check-existing") {
		checkExisting = gen.CheckExisting
	}

	root := gc.ComponentsPath()
	flow := &component.Flow{
		Prompter: opts.Prompter,
		Validator: &component.Validator{
			Fs:            opts.Fs,
			Root:          root,
			CheckExisting: checkExisting,
		},
		Defaults: defaults,
		Presets:  presets,
	}

	result, err := flow.Collect(ctx, args)
	if err != nil {
		return cmdutil.Exit("collecting options", err)
	}

	emitter := &component.Emitter{
		Fs:        opts.Fs,
		Root:      root,
		Templates: gc.Config.TemplatesEnabled() && !gen.NoTemplate,
	}

	var written []string
	err = output.RunWithSpinner(ctx, func() error {
		var emitErr error
		written, emitErr = emitter.Emit(ctx, result.Plan, result.Names)
		return emitErr
	}, output.WithTitle("Generating components..."))
	if err != nil {
		return cmdutil.Exit("generating components", err)
	}

	cmdutil.PrintGenerated(root, written)
	return nil
}

// resolveDefaults parses the resolved language and stylesheet used as the
// initial prompt selection.
func resolveDefaults(gc *cmdtypes.GlobalConfig) (component.Defaults, error) {
	var d component.Defaults
	if gc.Resolved == nil {
		return d, nil
	}

	language, err := templates.ParseLanguage(gc.Resolved.Language.Value)
	if err != nil {
		return d, err
	}
	stylesheet, err := templates.ParseStylesheet(gc.Resolved.Stylesheet.Value)
	if err != nil {
		return d, err
	}

	d.Language = language
	d.Stylesheet = stylesheet
	return d, nil
}

// needsPrompt reports whether any question will be asked.
func needsPrompt(args []string, p component.Presets) bool {
	return len(args) == 0 || p.Language == "" || p.Stylesheet == templates.StylesheetNone || !p.FilesSet
}
