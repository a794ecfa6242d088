package cmdutil

import (
	"errors"
	"fmt"
	"path/filepath"

	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
	"github.com/rcgen/cli/internal/templates"
)

// FileDescriptions maps written paths, relative to root, to a short
// description of their kind. Paths outside root are kept as given.
func FileDescriptions(root string, paths []string) map[string]string {
	files := make(map[string]string, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			rel = p
		}
		files[filepath.ToSlash(rel)] = describe(filepath.Base(p))
	}
	return files
}

// describe returns the registry description for a file name such as "Menu.test.ts".
// The longest dotted suffix naming a known kind wins.
func describe(name string) string {
	for i, r := range name {
		if r != '.' {
			continue
		}
		if kind, err := templates.ParseFileKind(name[i+1:]); err == nil {
			info, _ := templates.Get(kind)
			return info.Description
		}
	}
	return ""
}

// PrintGenerated prints the generation report: a header, the tree of
// written files below root and a completion line.
func PrintGenerated(root string, paths []string) {
	output.Println("")
	output.Println(output.FormatInfo("The following files have been generated:"))
	if len(paths) > 0 {
		output.Println(output.RenderFileTree(root, FileDescriptions(root, paths)))
	}
	output.Println(output.FormatCheckmark("Done"))
}

// PrintError logs err for the user. Structured errors are logged with their
// location and followed by their hint.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		output.Error(msg, "error", err)
		return
	}

	keyvals := []interface{}{"error", detail.Message}
	if detail.Location != "" {
		keyvals = append(keyvals, "location", detail.Location)
	}
	output.Error(fmt.Sprintf("%s: %s", msg, detail.Type), keyvals...)
	if detail.Hint != "" {
		output.Info(detail.Hint)
	}
}

// Exit prints err and wraps it in an ExitError carrying the code derived
// from its sentinel. Cancellation is reported without an error log.
func Exit(msg string, err error) error {
	if err == nil {
		return nil
	}

	code := oerrors.ExitCodeFromError(err)
	if code == oerrors.ExitCancelled {
		output.Println(output.FormatFailure("Cancelled"))
	} else {
		PrintError(msg, err)
	}

	return &oerrors.ExitError{
		Err:     fmt.Errorf("%s: %w", msg, err),
		Code:    code,
		Printed: true,
	}
}
