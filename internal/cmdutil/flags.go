// Package cmdutil provides shared command utilities. It centralizes flag
// handling, preset parsing and report formatting for the generate command.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcgen/cli/internal/component"
	"github.com/rcgen/cli/internal/templates"
)

// GenerateFlags holds the flags of the component generation command.
type GenerateFlags struct {
	Path          string
	NoTemplate    bool
	Language      string
	Stylesheet    string
	Files         string
	CheckExisting bool
}

// AddTo registers the generate flags on the given cobra command.
func (f *GenerateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Path, "path", "p", "",
		"Directory components are generated into (env: RCG_COMPONENTS_PATH, default: components)")
	cmd.Flags().BoolVarP(&f.NoTemplate, "no-template", "t", false,
		"Create empty files instead of filling them from templates")
	cmd.Flags().StringVarP(&f.Language, "language", "l", "",
		"Base language, skips the language prompt: jsx, tsx")
	cmd.Flags().StringVarP(&f.Stylesheet, "stylesheet", "s", "",
		"Stylesheet language, skips the stylesheet prompt: css, scss, sass")
	cmd.Flags().StringVarP(&f.Files, "files", "f", "",
		"Comma-separated files to generate, skips the files prompt: component, stylesheet, test, or none")
	cmd.Flags().BoolVar(&f.CheckExisting, "check-existing", true,
		"Reject names whose component directory already exists")
}

// Presets converts the preset flags into flow presets.
func (f *GenerateFlags) Presets() (component.Presets, error) {
	var p component.Presets

	if f.Language != "" {
		language, err := templates.ParseLanguage(f.Language)
		if err != nil {
			return p, fmt.Errorf("--language: %w", err)
		}
		p.Language = language
	}

	if f.Stylesheet != "" {
		stylesheet, err := templates.ParseStylesheet(f.Stylesheet)
		if err != nil {
			return p, fmt.Errorf("--stylesheet: %w", err)
		}
		p.Stylesheet = stylesheet
	}

	if f.Files != "" {
		roles, err := ParseFiles(f.Files)
		if err != nil {
			return p, fmt.Errorf("--files: %w", err)
		}
		p.Files = roles
		p.FilesSet = true
	}

	return p, nil
}

// ParseFiles parses a comma-separated role list. "none" selects no files.
func ParseFiles(s string) ([]templates.Role, error) {
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return []templates.Role{}, nil
	}

	var roles []templates.Role
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		role, err := templates.ParseRole(part)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if len(roles) == 0 {
		return nil, fmt.Errorf("no files given; use \"none\" to generate nothing")
	}
	return roles, nil
}
