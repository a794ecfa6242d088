package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed files/*.tmpl
var filesFS embed.FS

// load reads an embedded template by file name.
func load(name string) (string, error) {
	content, err := fs.ReadFile(filesFS, path.Join("files", name))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}
	return string(content), nil
}
