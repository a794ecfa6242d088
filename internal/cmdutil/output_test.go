package cmdutil

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rcgen/cli/internal/errors"
	"github.com/rcgen/cli/internal/output"
)

func TestFileDescriptions(t *testing.T) {
	root := filepath.Join("src", "components")
	paths := []string{
		filepath.Join(root, "Menu", "Menu.tsx"),
		filepath.Join(root, "Menu", "Menu.scss"),
		filepath.Join(root, "Menu", "Menu.test.ts"),
	}

	got := FileDescriptions(root, paths)

	assert.Equal(t, map[string]string{
		"Menu/Menu.tsx":     "Component",
		"Menu/Menu.scss":    "Stylesheet",
		"Menu/Menu.test.ts": "Tests",
	}, got)
}

func TestDescribe(t *testing.T) {
	tests := map[string]string{
		"Card.jsx":     "Component",
		"Card.css":     "Stylesheet",
		"Card.sass":    "Stylesheet",
		"Card.test.js": "Tests",
		"Card.md":      "",
		"Card":         "",
		"v2.Card.tsx":  "Component",
		"a.test.ts":    "Tests",
	}
	for name, want := range tests {
		assert.Equal(t, want, describe(name), name)
	}
}

func TestPrintGenerated(t *testing.T) {
	var buf bytes.Buffer
	prev := output.SetOutput(&buf)
	defer output.SetOutput(prev)

	PrintGenerated("components", []string{
		filepath.Join("components", "Card", "Card.jsx"),
	})

	out := buf.String()
	assert.Contains(t, out, "The following files have been generated:")
	assert.Contains(t, out, "Card.jsx")
	assert.Contains(t, out, "Done")
}

func TestExit(t *testing.T) {
	var buf bytes.Buffer
	prev := output.SetOutput(&buf)
	defer output.SetOutput(prev)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", oerrors.NewValidationError("duplicates not allowed", "", ""), oerrors.ExitValidationError},
		{"cancelled", oerrors.ErrCancelled, oerrors.ExitCancelled},
		{"write", oerrors.NewWriteError("components/Card/Card.jsx", errors.New("disk full")), oerrors.ExitWriteError},
		{"general", errors.New("boom"), oerrors.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Exit("generating components", tt.err)

			var exitErr *oerrors.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.True(t, exitErr.Printed)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, Exit("noop", nil))
}
