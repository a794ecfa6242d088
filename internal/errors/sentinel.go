package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates the requested component names were rejected.
	ErrValidation = errors.New("validation error")

	// ErrCancelled indicates the user aborted an interactive prompt.
	ErrCancelled = errors.New("cancelled")

	// ErrWrite indicates a component file could not be written.
	ErrWrite = errors.New("write error")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")
)
