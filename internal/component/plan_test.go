package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcgen/cli/internal/templates"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name       string
		language   templates.Language
		stylesheet templates.Stylesheet
		roles      []templates.Role
		want       []templates.FileKind
	}{
		{
			name:       "all roles tsx scss",
			language:   templates.LanguageTSX,
			stylesheet: templates.StylesheetSCSS,
			roles:      templates.Roles(),
			want:       []templates.FileKind{templates.ComponentTS, templates.StylesheetFileSCSS, templates.TestTS},
		},
		{
			name:       "roles are reordered and deduplicated",
			language:   templates.LanguageJSX,
			stylesheet: templates.StylesheetCSS,
			roles:      []templates.Role{templates.RoleTest, templates.RoleComponent, templates.RoleTest},
			want:       []templates.FileKind{templates.ComponentJS, templates.TestJS},
		},
		{
			name:       "no roles",
			language:   templates.LanguageJSX,
			stylesheet: templates.StylesheetCSS,
			roles:      nil,
			want:       []templates.FileKind{},
		},
		{
			name:       "stylesheet role without stylesheet",
			language:   templates.LanguageTSX,
			stylesheet: templates.StylesheetNone,
			roles:      []templates.Role{templates.RoleStylesheet},
			want:       []templates.FileKind{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlan(tt.language, tt.stylesheet, tt.roles)
			assert.Equal(t, tt.want, p.Files)
			assert.NoError(t, p.Validate())
		})
	}
}

func TestPlanImportedStylesheet(t *testing.T) {
	with := NewPlan(templates.LanguageTSX, templates.StylesheetSASS, templates.Roles())
	assert.True(t, with.StylesheetSelected())
	assert.Equal(t, templates.StylesheetSASS, with.ImportedStylesheet())

	without := NewPlan(templates.LanguageTSX, templates.StylesheetSASS, []templates.Role{templates.RoleComponent})
	assert.False(t, without.StylesheetSelected())
	assert.Equal(t, templates.StylesheetNone, without.ImportedStylesheet())
}

func TestPlanValidate(t *testing.T) {
	t.Run("two kinds for one role", func(t *testing.T) {
		p := Plan{Files: []templates.FileKind{templates.ComponentJS, templates.ComponentTS}}
		assert.ErrorContains(t, p.Validate(), "both generate the component")
	})

	t.Run("unknown kind", func(t *testing.T) {
		p := Plan{Files: []templates.FileKind{"component-vue"}}
		assert.ErrorContains(t, p.Validate(), "unknown file kind")
	})
}
