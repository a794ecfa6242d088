package component

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/prompt"
	"github.com/rcgen/cli/internal/templates"
)

// Question names, in the order they are asked.
const (
	QuestionComponents = "components"
	QuestionLanguage   = "language"
	QuestionStylesheet = "stylesheet"
	QuestionFiles      = "filesToGenerate"
)

// Defaults are the choices preselected in the select prompts.
type Defaults struct {
	Language   templates.Language
	Stylesheet templates.Stylesheet
}

// Presets are answers supplied up front. A preset step is not asked.
type Presets struct {
	// Language skips the language prompt when non-empty.
	Language templates.Language

	// Stylesheet skips the stylesheet prompt when non-empty.
	Stylesheet templates.Stylesheet

	// Files skips the file prompt when FilesSet is true.
	// An empty Files with FilesSet generates nothing.
	Files    []templates.Role
	FilesSet bool
}

// Result is the outcome of a completed flow.
type Result struct {
	Names []string
	Plan  Plan
}

// Flow asks the generation questions in a fixed order.
type Flow struct {
	Prompter  prompt.Prompter
	Validator *Validator
	Defaults  Defaults
	Presets   Presets
}

// Collect runs the flow. When names is empty the user is asked for them.
// Cancelling any question returns errors.ErrCancelled.
func (f *Flow) Collect(ctx context.Context, names []string) (*Result, error) {
	names, err := f.collectNames(ctx, names)
	if err != nil {
		return nil, err
	}

	language, err := f.collectLanguage(ctx)
	if err != nil {
		return nil, err
	}

	stylesheet, err := f.collectStylesheet(ctx)
	if err != nil {
		return nil, err
	}

	roles, err := f.collectFiles(ctx, language, stylesheet)
	if err != nil {
		return nil, err
	}

	plan := NewPlan(language, stylesheet, roles)
	output.Debug("generation plan collected",
		"components", strings.Join(names, " "),
		"language", language,
		"stylesheet", stylesheet,
		"files", len(plan.Files),
	)

	return &Result{Names: names, Plan: plan}, nil
}

func (f *Flow) collectNames(ctx context.Context, names []string) ([]string, error) {
	if len(names) > 0 {
		joined := strings.Join(names, " ")
		if err := f.validate(joined); err != nil {
			return nil, err
		}
		return SplitNames(joined), nil
	}

	answer, err := f.ask(ctx, prompt.Question{
		Name:     QuestionComponents,
		Kind:     prompt.KindText,
		Message:  "Enter component name(s):",
		Validate: f.validate,
	})
	if err != nil {
		return nil, err
	}
	return SplitNames(answer.Text), nil
}

func (f *Flow) validate(raw string) error {
	if f.Validator == nil {
		return (&Validator{}).Validate(raw)
	}
	return f.Validator.Validate(raw)
}

func (f *Flow) collectLanguage(ctx context.Context) (templates.Language, error) {
	if f.Presets.Language != "" {
		return f.Presets.Language, nil
	}

	languages := templates.Languages()
	choices := make([]prompt.Choice, len(languages))
	for i, l := range languages {
		choices[i] = prompt.Choice{Title: l.Title(), Value: string(l)}
	}

	answer, err := f.ask(ctx, prompt.Question{
		Name:    QuestionLanguage,
		Kind:    prompt.KindSelect,
		Message: "Select language",
		Choices: choices,
		Initial: initialIndex(languages, f.Defaults.Language, templates.LanguageTSX),
	})
	if err != nil {
		return "", err
	}
	return templates.ParseLanguage(answer.Value)
}

func (f *Flow) collectStylesheet(ctx context.Context) (templates.Stylesheet, error) {
	if f.Presets.Stylesheet != templates.StylesheetNone {
		return f.Presets.Stylesheet, nil
	}

	stylesheets := templates.Stylesheets()
	choices := make([]prompt.Choice, len(stylesheets))
	for i, s := range stylesheets {
		choices[i] = prompt.Choice{Title: string(s), Value: string(s)}
	}

	answer, err := f.ask(ctx, prompt.Question{
		Name:    QuestionStylesheet,
		Kind:    prompt.KindSelect,
		Message: "Select stylesheet language",
		Choices: choices,
		Initial: initialIndex(stylesheets, f.Defaults.Stylesheet, templates.StylesheetSCSS),
	})
	if err != nil {
		return templates.StylesheetNone, err
	}
	return templates.ParseStylesheet(answer.Value)
}

func (f *Flow) collectFiles(ctx context.Context, language templates.Language, stylesheet templates.Stylesheet) ([]templates.Role, error) {
	if f.Presets.FilesSet {
		return f.Presets.Files, nil
	}

	choices := make([]prompt.Choice, 0, len(templates.Roles()))
	for _, role := range templates.Roles() {
		kind := templates.KindFor(role, language, stylesheet)
		choices = append(choices, prompt.Choice{
			Title:    fileChoiceTitle(role, kind),
			Value:    string(role),
			Selected: true,
		})
	}

	answer, err := f.ask(ctx, prompt.Question{
		Name:    QuestionFiles,
		Kind:    prompt.KindMultiSelect,
		Message: "Which files would you like to generate?",
		Choices: choices,
	})
	if err != nil {
		return nil, err
	}

	roles := make([]templates.Role, 0, len(answer.Values))
	for _, v := range answer.Values {
		role, err := templates.ParseRole(v)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// ask forwards q to the prompter and maps an abort to ErrCancelled.
func (f *Flow) ask(ctx context.Context, q prompt.Question) (prompt.Answer, error) {
	answer, err := f.Prompter.Ask(ctx, q)
	if errors.Is(err, prompt.ErrAborted) {
		output.Debug("prompt aborted", "question", q.Name)
		return prompt.Answer{}, fmt.Errorf("%s: %w", q.Name, oerrors.ErrCancelled)
	}
	return answer, err
}

func fileChoiceTitle(role templates.Role, kind templates.FileKind) string {
	switch role {
	case templates.RoleComponent:
		return fmt.Sprintf("Component file (.%s)", kind.Extension())
	case templates.RoleStylesheet:
		return fmt.Sprintf("Stylesheet (.%s)", kind.Extension())
	default:
		return fmt.Sprintf("Tests (.%s)", kind.Extension())
	}
}

// initialIndex returns the position of want in options, falling back to fallback.
func initialIndex[T comparable](options []T, want, fallback T) int {
	if i := slices.Index(options, want); i >= 0 {
		return i
	}
	return max(slices.Index(options, fallback), 0)
}
