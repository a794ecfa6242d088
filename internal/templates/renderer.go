package templates

import "strings"

// Placeholders holds the values substituted into template text.
type Placeholders struct {
	// ComponentName replaces {{componentName}}.
	ComponentName string

	// StylesheetImport replaces {{stylesheetImport}}. Empty when no stylesheet is selected.
	StylesheetImport string
}

// Substitute replaces every placeholder in text with its literal value.
// Unknown placeholders are left untouched.
func Substitute(text string, p Placeholders) string {
	r := strings.NewReplacer(
		"{{componentName}}", p.ComponentName,
		"{{stylesheetImport}}", p.StylesheetImport,
	)
	return r.Replace(text)
}
