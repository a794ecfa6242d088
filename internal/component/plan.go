package component

import (
	"fmt"
	"slices"

	"github.com/rcgen/cli/internal/templates"
)

// Plan is the set of choices shared by every component of one invocation.
type Plan struct {
	Language   templates.Language
	Stylesheet templates.Stylesheet

	// Files lists the kinds to emit in role order, at most one per role.
	Files []templates.FileKind
}

// NewPlan builds a plan from the selected roles. Roles are deduplicated and
// ordered component, stylesheet, test regardless of the input order.
func NewPlan(language templates.Language, stylesheet templates.Stylesheet, roles []templates.Role) Plan {
	p := Plan{
		Language:   language,
		Stylesheet: stylesheet,
		Files:      []templates.FileKind{},
	}
	for _, role := range templates.Roles() {
		if !slices.Contains(roles, role) {
			continue
		}
		if kind := templates.KindFor(role, language, stylesheet); kind != "" {
			p.Files = append(p.Files, kind)
		}
	}
	return p
}

// StylesheetSelected reports whether a stylesheet file is part of the plan.
func (p Plan) StylesheetSelected() bool {
	for _, k := range p.Files {
		if k.Role() == templates.RoleStylesheet {
			return true
		}
	}
	return false
}

// ImportedStylesheet returns the stylesheet component files should import,
// or StylesheetNone when no stylesheet file is emitted.
func (p Plan) ImportedStylesheet() templates.Stylesheet {
	if !p.StylesheetSelected() {
		return templates.StylesheetNone
	}
	return p.Stylesheet
}

// Validate checks that every kind is known and no role appears twice.
func (p Plan) Validate() error {
	roles := make(map[templates.Role]templates.FileKind, len(p.Files))
	for _, k := range p.Files {
		if !k.IsValid() {
			return fmt.Errorf("unknown file kind %q", k)
		}
		if prev, ok := roles[k.Role()]; ok {
			return fmt.Errorf("file kinds %s and %s both generate the %s", prev, k, k.Role())
		}
		roles[k.Role()] = k
	}
	return nil
}
