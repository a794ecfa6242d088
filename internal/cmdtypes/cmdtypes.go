// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and internal/cmd/config.
package cmdtypes

import (
	"github.com/rcgen/cli/internal/config"
	oerrors "github.com/rcgen/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded config file with defaults applied.
	Config *config.Config

	// Resolved holds every precedence-resolved value with its source.
	Resolved *config.ResolvedConfig

	// ConfigPath is the resolved --config path.
	ConfigPath string

	Verbose bool
}

// ComponentsPath returns the resolved output root.
func (g *GlobalConfig) ComponentsPath() string {
	if g == nil || g.Resolved == nil {
		return config.DefaultComponentsPath
	}
	return g.Resolved.ComponentsPath.Value
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitCancelled       = oerrors.ExitCancelled
	ExitWriteError      = oerrors.ExitWriteError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
