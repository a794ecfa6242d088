package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for rcg.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rcg/config.yaml).
	ConfigFile string

	// HomeDir is the rcg home directory (~/.rcg).
	HomeDir string
}

// DefaultPaths returns the default paths for rcg.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rcgHome := filepath.Join(homeDir, ".rcg")

	return &Paths{
		ConfigFile: filepath.Join(rcgHome, "config.yaml"),
		HomeDir:    rcgHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If RCG_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("RCG_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
