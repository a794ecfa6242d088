package config

import (
	"fmt"
	"strings"

	"github.com/rcgen/cli/internal/templates"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks that configured choices name known languages and stylesheets.
// Empty fields are valid and fall back to defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs ValidationErrors

	if cfg.Language != "" {
		if _, err := templates.ParseLanguage(cfg.Language); err != nil {
			errs = append(errs, ValidationError{Field: "language", Message: err.Error()})
		}
	}
	if cfg.Stylesheet != "" {
		if _, err := templates.ParseStylesheet(cfg.Stylesheet); err != nil {
			errs = append(errs, ValidationError{Field: "stylesheet", Message: err.Error()})
		}
	}
	if strings.TrimSpace(cfg.ComponentsPath) != cfg.ComponentsPath {
		errs = append(errs, ValidationError{Field: "componentsPath", Message: "must not have leading or trailing whitespace"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
