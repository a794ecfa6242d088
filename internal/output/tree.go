package output

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

const (
	// descriptionColumn is where file descriptions start.
	descriptionColumn = 30

	// levelWidth is the width of one connector ("├── ", "│   ").
	levelWidth = 4
)

// dirEntry groups written files by directory.
type dirEntry struct {
	dirs  map[string]*dirEntry
	files map[string]string
}

// RenderFileTree renders written files below root with their descriptions
// aligned at column 30. files maps slash-separated paths relative to root to
// their descriptions. Directories are listed before files, each by name.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := &dirEntry{}
	for p, desc := range files {
		top.add(strings.Split(filepath.ToSlash(p), "/"), desc)
	}

	t := tree.Root(strings.TrimSuffix(root, "/") + "/").
		RootStyle(StyleSummary).
		EnumeratorStyle(StyleDim.PaddingRight(1))

	return top.appendTo(t, 1).String() + "\n"
}

func (d *dirEntry) add(parts []string, desc string) {
	if len(parts) == 1 {
		if d.files == nil {
			d.files = make(map[string]string)
		}
		d.files[parts[0]] = desc
		return
	}

	if d.dirs == nil {
		d.dirs = make(map[string]*dirEntry)
	}
	sub, ok := d.dirs[parts[0]]
	if !ok {
		sub = &dirEntry{}
		d.dirs[parts[0]] = sub
	}
	sub.add(parts[1:], desc)
}

func (d *dirEntry) appendTo(t *tree.Tree, depth int) *tree.Tree {
	for _, name := range slices.Sorted(maps.Keys(d.dirs)) {
		t.Child(d.dirs[name].appendTo(tree.Root(name+"/"), depth+1))
	}
	for _, name := range slices.Sorted(maps.Keys(d.files)) {
		t.Child(fileLine(name, d.files[name], depth))
	}
	return t
}

func fileLine(name, desc string, depth int) string {
	if desc == "" {
		return name
	}
	padding := max(descriptionColumn-depth*levelWidth-len([]rune(name)), 2)
	return name + strings.Repeat(" ", padding) + StyleDim.Render(desc)
}
