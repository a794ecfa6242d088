package component

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/prompt"
	"github.com/rcgen/cli/internal/templates"
)

func TestFlowCollect_AllQuestions(t *testing.T) {
	p := prompt.NewScripted(
		"Menu Button Slider",
		"tsx",
		"scss",
		[]string{"component", "stylesheet", "test"},
	)
	flow := &Flow{Prompter: p, Validator: &Validator{}}

	result, err := flow.Collect(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"Menu", "Button", "Slider"}, result.Names)
	assert.Equal(t, templates.LanguageTSX, result.Plan.Language)
	assert.Equal(t, templates.StylesheetSCSS, result.Plan.Stylesheet)
	assert.Equal(t, []templates.FileKind{templates.ComponentTS, templates.StylesheetFileSCSS, templates.TestTS}, result.Plan.Files)
	assert.Zero(t, p.Remaining())

	asked := p.Asked()
	require.Len(t, asked, 4)
	assert.Equal(t, QuestionComponents, asked[0].Name)
	assert.Equal(t, prompt.KindText, asked[0].Kind)
	assert.Equal(t, "Enter component name(s):", asked[0].Message)
	assert.NotNil(t, asked[0].Validate)

	assert.Equal(t, QuestionLanguage, asked[1].Name)
	assert.Equal(t, "Select language", asked[1].Message)
	assert.Equal(t, 1, asked[1].Initial)
	assert.Equal(t, "JavaScript (.jsx)", asked[1].Choices[0].Title)
	assert.Equal(t, "TypeScript (.tsx)", asked[1].Choices[1].Title)

	assert.Equal(t, QuestionStylesheet, asked[2].Name)
	assert.Equal(t, "Select stylesheet language", asked[2].Message)
	assert.Equal(t, 1, asked[2].Initial)
	assert.Equal(t, []string{"css", "scss", "sass"}, prompt.Values(asked[2].Choices))

	assert.Equal(t, QuestionFiles, asked[3].Name)
	assert.Equal(t, prompt.KindMultiSelect, asked[3].Kind)
	assert.Equal(t, "Which files would you like to generate?", asked[3].Message)
	titles := []string{}
	for _, c := range asked[3].Choices {
		titles = append(titles, c.Title)
		assert.True(t, c.Selected)
	}
	assert.Equal(t, []string{"Component file (.tsx)", "Stylesheet (.scss)", "Tests (.test.ts)"}, titles)
}

func TestFlowCollect_FileTitlesFollowAnswers(t *testing.T) {
	p := prompt.NewScripted("jsx", "sass", []string{})
	flow := &Flow{Prompter: p}

	result, err := flow.Collect(context.Background(), []string{"Card"})

	require.NoError(t, err)
	assert.Empty(t, result.Plan.Files)

	asked := p.Asked()
	require.Len(t, asked, 3)
	assert.Equal(t, "Component file (.jsx)", asked[2].Choices[0].Title)
	assert.Equal(t, "Stylesheet (.sass)", asked[2].Choices[1].Title)
	assert.Equal(t, "Tests (.test.js)", asked[2].Choices[2].Title)
}

func TestFlowCollect_DefaultsSetInitialSelection(t *testing.T) {
	p := prompt.NewScripted("jsx", "css", []string{"component"})
	flow := &Flow{
		Prompter: p,
		Defaults: Defaults{Language: templates.LanguageJSX, Stylesheet: templates.StylesheetSASS},
	}

	_, err := flow.Collect(context.Background(), []string{"Card"})
	require.NoError(t, err)

	asked := p.Asked()
	assert.Equal(t, 0, asked[0].Initial)
	assert.Equal(t, 2, asked[1].Initial)
}

func TestFlowCollect_Presets(t *testing.T) {
	t.Run("all presets skip every option question", func(t *testing.T) {
		p := prompt.NewScripted()
		flow := &Flow{
			Prompter: p,
			Presets: Presets{
				Language:   templates.LanguageJSX,
				Stylesheet: templates.StylesheetCSS,
				Files:      []templates.Role{templates.RoleComponent, templates.RoleStylesheet},
				FilesSet:   true,
			},
		}

		result, err := flow.Collect(context.Background(), []string{"Card"})

		require.NoError(t, err)
		assert.Empty(t, p.Asked())
		assert.Equal(t, []templates.FileKind{templates.ComponentJS, templates.StylesheetFileCSS}, result.Plan.Files)
	})

	t.Run("remaining questions keep their order", func(t *testing.T) {
		p := prompt.NewScripted("Card", "scss")
		flow := &Flow{
			Prompter: p,
			Presets: Presets{
				Language: templates.LanguageTSX,
				FilesSet: true,
			},
		}

		result, err := flow.Collect(context.Background(), nil)

		require.NoError(t, err)
		asked := p.Asked()
		require.Len(t, asked, 2)
		assert.Equal(t, QuestionComponents, asked[0].Name)
		assert.Equal(t, QuestionStylesheet, asked[1].Name)
		assert.Empty(t, result.Plan.Files)
	})
}

func TestFlowCollect_InvalidNames(t *testing.T) {
	t.Run("duplicate arguments are rejected before any prompt", func(t *testing.T) {
		p := prompt.NewScripted()
		flow := &Flow{Prompter: p, Validator: &Validator{}}

		_, err := flow.Collect(context.Background(), []string{"Card", "Card"})

		assert.ErrorIs(t, err, ErrDuplicateName)
		assert.ErrorIs(t, err, oerrors.ErrValidation)
		assert.Empty(t, p.Asked())
	})

	t.Run("existing component argument is rejected", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("components/Card", 0o755))
		flow := &Flow{
			Prompter:  prompt.NewScripted(),
			Validator: &Validator{Fs: fs, Root: "components", CheckExisting: true},
		}

		_, err := flow.Collect(context.Background(), []string{"Card"})

		assert.ErrorIs(t, err, ErrComponentExists)
	})

	t.Run("empty argument is dropped", func(t *testing.T) {
		flow := &Flow{
			Prompter: prompt.NewScripted(),
			Presets:  Presets{Language: templates.LanguageTSX, Stylesheet: templates.StylesheetCSS, FilesSet: true},
		}

		result, err := flow.Collect(context.Background(), []string{"Card", ""})

		require.NoError(t, err)
		assert.Equal(t, []string{"Card"}, result.Names)
	})

	t.Run("argument with whitespace yields separate names", func(t *testing.T) {
		flow := &Flow{
			Prompter: prompt.NewScripted(),
			Presets:  Presets{Language: templates.LanguageTSX, Stylesheet: templates.StylesheetCSS, FilesSet: true},
		}

		result, err := flow.Collect(context.Background(), []string{"Menu Button"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Menu", "Button"}, result.Names)
	})

	t.Run("only empty arguments are rejected", func(t *testing.T) {
		flow := &Flow{Prompter: prompt.NewScripted(), Validator: &Validator{}}

		_, err := flow.Collect(context.Background(), []string{"", " "})

		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("path arguments are rejected", func(t *testing.T) {
		flow := &Flow{Prompter: prompt.NewScripted(), Validator: &Validator{}}

		_, err := flow.Collect(context.Background(), []string{"../x"})

		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("prompted names go through the validator", func(t *testing.T) {
		flow := &Flow{Prompter: prompt.NewScripted("   "), Validator: &Validator{}}

		_, err := flow.Collect(context.Background(), nil)

		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestFlowCollect_Cancelled(t *testing.T) {
	tests := []struct {
		name    string
		replies []any
	}{
		{"at names", []any{prompt.Abort}},
		{"at language", []any{"Card", prompt.Abort}},
		{"at stylesheet", []any{"Card", "tsx", prompt.Abort}},
		{"at files", []any{"Card", "tsx", "css", prompt.Abort}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prompt.NewScripted(tt.replies...)
			flow := &Flow{Prompter: p, Validator: &Validator{}}

			result, err := flow.Collect(context.Background(), nil)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, oerrors.ErrCancelled)
			assert.Equal(t, oerrors.ExitCancelled, oerrors.ExitCodeFromError(err))
			assert.Len(t, p.Asked(), len(tt.replies))
		})
	}
}

func TestInitialIndex(t *testing.T) {
	options := []string{"a", "b", "c"}
	assert.Equal(t, 2, initialIndex(options, "c", "b"))
	assert.Equal(t, 1, initialIndex(options, "x", "b"))
	assert.Equal(t, 0, initialIndex(options, "x", "y"))
}
