// Package component collects generation options and writes component files.
package component

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/rcgen/cli/internal/errors"
)

// nameError is a validation failure of the component name input.
// It matches errors.ErrValidation through errors.Is.
type nameError string

func (e nameError) Error() string { return string(e) }

func (e nameError) Unwrap() error { return oerrors.ErrValidation }

// Validation failures, reported in this order.
var (
	ErrEmptyName       error = nameError("name of component may not be empty")
	ErrDuplicateName   error = nameError("duplicates not allowed")
	ErrInvalidName     error = nameError("name of component may not contain a path separator")
	ErrComponentExists error = nameError("component already exists")
)

// SplitNames trims raw and splits it on whitespace into component names.
func SplitNames(raw string) []string {
	return strings.Fields(raw)
}

// Validator checks component name input before anything is written.
type Validator struct {
	// Fs is the file system used for the existing-directory check.
	// Defaults to the OS file system.
	Fs afero.Fs

	// Root is the directory components are generated into.
	Root string

	// CheckExisting rejects names whose directory already exists under Root.
	CheckExisting bool
}

// Validate returns nil if raw names at least one component, has no repeated
// names and, when CheckExisting is set, names no existing component.
// Only the first violation is reported.
func (v *Validator) Validate(raw string) error {
	names := SplitNames(raw)
	if len(names) == 0 {
		return ErrEmptyName
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return ErrDuplicateName
		}
		seen[name] = struct{}{}
	}

	for _, name := range names {
		if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: %s", ErrInvalidName, name)
		}
	}

	if !v.CheckExisting {
		return nil
	}

	fs := v.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	for _, name := range names {
		exists, err := afero.DirExists(fs, filepath.Join(v.Root, name))
		if err != nil {
			return fmt.Errorf("checking component %s: %w", name, err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrComponentExists, name)
		}
	}

	return nil
}
