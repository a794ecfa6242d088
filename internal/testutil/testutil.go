// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcgen/cli/internal/output"
)

// configEnv lists every environment variable that feeds configuration.
var configEnv = []string{
	"RCG_CONFIG",
	"RCG_COMPONENTS_PATH",
	"RCG_LANGUAGE",
	"RCG_STYLESHEET",
	"RCG_TEMPLATE",
	"RCG_CHECK_EXISTING",
	"RCG_LOG_TIMESTAMPS",
}

// IsolateConfig points HOME at an empty temp dir and clears every RCG_*
// setting so the user's configuration cannot leak into a test.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
	return home
}

// CaptureOutput redirects output.Print and output.Println into a buffer
// for the duration of the test.
func CaptureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetOutput(&buf)
	t.Cleanup(func() { output.SetOutput(prev) })
	return &buf
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
