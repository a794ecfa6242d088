// Package templates provides the file kinds and boilerplate used for generated components.
package templates

import (
	"fmt"
	"strings"
)

// Language is the base language of a generated component.
type Language string

const (
	// LanguageJSX generates JavaScript components (.jsx) with .test.js tests.
	LanguageJSX Language = "jsx"

	// LanguageTSX generates TypeScript components (.tsx) with .test.ts tests.
	LanguageTSX Language = "tsx"
)

// Languages returns all languages in prompt order.
func Languages() []Language {
	return []Language{LanguageJSX, LanguageTSX}
}

// ComponentKind returns the file kind of the component source file.
func (l Language) ComponentKind() FileKind {
	if l == LanguageJSX {
		return ComponentJS
	}
	return ComponentTS
}

// TestKind returns the file kind of the test file.
// The test extension follows the language: jsx pairs with test.js, tsx with test.ts.
func (l Language) TestKind() FileKind {
	if l == LanguageJSX {
		return TestJS
	}
	return TestTS
}

// Title returns the label shown in the language prompt.
func (l Language) Title() string {
	switch l {
	case LanguageJSX:
		return "JavaScript (.jsx)"
	case LanguageTSX:
		return "TypeScript (.tsx)"
	default:
		return string(l)
	}
}

// ParseLanguage parses a language name. Extensions and full names are accepted.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "jsx", "js", "javascript":
		return LanguageJSX, nil
	case "tsx", "ts", "typescript":
		return LanguageTSX, nil
	default:
		return "", fmt.Errorf("unknown language %q; valid languages: jsx, tsx", s)
	}
}

// Stylesheet is the stylesheet language of a generated component.
// The zero value means no stylesheet.
type Stylesheet string

const (
	// StylesheetNone disables the stylesheet import.
	StylesheetNone Stylesheet = ""

	StylesheetCSS  Stylesheet = "css"
	StylesheetSCSS Stylesheet = "scss"
	StylesheetSASS Stylesheet = "sass"
)

// Stylesheets returns all stylesheet languages in prompt order.
func Stylesheets() []Stylesheet {
	return []Stylesheet{StylesheetCSS, StylesheetSCSS, StylesheetSASS}
}

// Kind returns the file kind of the stylesheet file.
func (s Stylesheet) Kind() FileKind {
	switch s {
	case StylesheetCSS:
		return StylesheetFileCSS
	case StylesheetSCSS:
		return StylesheetFileSCSS
	case StylesheetSASS:
		return StylesheetFileSASS
	default:
		return ""
	}
}

// ParseStylesheet parses a stylesheet language name.
func ParseStylesheet(s string) (Stylesheet, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "css":
		return StylesheetCSS, nil
	case "scss":
		return StylesheetSCSS, nil
	case "sass":
		return StylesheetSASS, nil
	default:
		return StylesheetNone, fmt.Errorf("unknown stylesheet %q; valid stylesheets: css, scss, sass", s)
	}
}

// Role groups file kinds by the part of a component they produce.
type Role string

const (
	RoleComponent  Role = "component"
	RoleStylesheet Role = "stylesheet"
	RoleTest       Role = "test"
)

// Roles returns all roles in generation order.
func Roles() []Role {
	return []Role{RoleComponent, RoleStylesheet, RoleTest}
}

// ParseRole parses a role name as used by the --files flag.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "component", "components":
		return RoleComponent, nil
	case "stylesheet", "stylesheets", "style", "styles":
		return RoleStylesheet, nil
	case "test", "tests":
		return RoleTest, nil
	default:
		return "", fmt.Errorf("unknown file %q; valid files: component, stylesheet, test", s)
	}
}

// FileKind is an enumerated output file category.
type FileKind string

const (
	ComponentJS        FileKind = "component-js"
	ComponentTS        FileKind = "component-ts"
	StylesheetFileCSS  FileKind = "stylesheet-css"
	StylesheetFileSCSS FileKind = "stylesheet-scss"
	StylesheetFileSASS FileKind = "stylesheet-sass"
	TestJS             FileKind = "test-js"
	TestTS             FileKind = "test-ts"
)

// Extension returns the output file extension without the leading dot.
// Unknown kinds return an empty string.
func (k FileKind) Extension() string {
	info, ok := kinds[k]
	if !ok {
		return ""
	}
	return info.Extension
}

// Role returns the role of the file kind.
func (k FileKind) Role() Role {
	return kinds[k].Role
}

// IsValid reports whether k is a known file kind.
func (k FileKind) IsValid() bool {
	_, ok := kinds[k]
	return ok
}

// FileName returns the output file name for a component, e.g. "Menu.test.ts".
func (k FileKind) FileName(componentName string) string {
	return componentName + "." + k.Extension()
}
