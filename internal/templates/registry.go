package templates

import (
	"fmt"
	"strings"
)

// KindInfo describes a file kind.
type KindInfo struct {
	// Kind is the enumerated tag.
	Kind FileKind

	// Extension is the output extension without the leading dot.
	Extension string

	// Role is the part of the component the file produces.
	Role Role

	// Template is the embedded template file, empty for untemplated kinds.
	Template string

	// Description is shown next to the file in the generated tree.
	Description string
}

// kinds is the internal registry of file kinds.
var kinds = map[FileKind]KindInfo{
	ComponentJS:        {ComponentJS, "jsx", RoleComponent, "component.tmpl", "Component"},
	ComponentTS:        {ComponentTS, "tsx", RoleComponent, "component.tmpl", "Component"},
	StylesheetFileCSS:  {StylesheetFileCSS, "css", RoleStylesheet, "", "Stylesheet"},
	StylesheetFileSCSS: {StylesheetFileSCSS, "scss", RoleStylesheet, "", "Stylesheet"},
	StylesheetFileSASS: {StylesheetFileSASS, "sass", RoleStylesheet, "", "Stylesheet"},
	TestJS:             {TestJS, "test.js", RoleTest, "test.tmpl", "Tests"},
	TestTS:             {TestTS, "test.ts", RoleTest, "test.tmpl", "Tests"},
}

// Get returns the registry entry for a kind.
func Get(kind FileKind) (KindInfo, bool) {
	info, ok := kinds[kind]
	return info, ok
}

// Kinds returns all file kinds in a stable order.
func Kinds() []FileKind {
	return []FileKind{
		ComponentJS,
		ComponentTS,
		StylesheetFileCSS,
		StylesheetFileSCSS,
		StylesheetFileSASS,
		TestJS,
		TestTS,
	}
}

// ParseFileKind parses a kind tag ("component-ts") or an extension ("tsx", "test.ts").
func ParseFileKind(s string) (FileKind, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	for _, k := range Kinds() {
		if string(k) == s || kinds[k].Extension == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown file kind %q", s)
}

// KindFor returns the file kind that fills role for the given language and stylesheet.
// It returns an empty kind when role is the stylesheet role and no stylesheet is set.
func KindFor(role Role, language Language, stylesheet Stylesheet) FileKind {
	switch role {
	case RoleComponent:
		return language.ComponentKind()
	case RoleStylesheet:
		return stylesheet.Kind()
	case RoleTest:
		return language.TestKind()
	default:
		return ""
	}
}

// Resolve returns the template text for a file of the given kind.
//
// Component files import the stylesheet ./<componentName>.<ext> only when
// stylesheet is set. Stylesheets and unknown kinds have no template and
// resolve to an empty string.
func Resolve(kind FileKind, componentName string, stylesheet Stylesheet) string {
	info, ok := kinds[kind]
	if !ok || info.Template == "" {
		return ""
	}

	text, err := load(info.Template)
	if err != nil {
		return ""
	}

	return Substitute(text, Placeholders{
		ComponentName:    componentName,
		StylesheetImport: stylesheetImport(componentName, stylesheet),
	})
}

func stylesheetImport(componentName string, stylesheet Stylesheet) string {
	if stylesheet == StylesheetNone {
		return ""
	}
	return fmt.Sprintf("import './%s.%s';", componentName, stylesheet)
}
