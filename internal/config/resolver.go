package config

import (
	"os"

	"github.com/rcgen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	// Key is the config key, e.g. "componentsPath".
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// resolveString applies precedence flag > env > config > default.
func resolveString(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}

	return rv
}

// ResolveAllOptions contains the inputs for ResolveAll.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string
	// PathFlag is the --path flag value.
	PathFlag string
	// LanguageFlag is the --language flag value.
	LanguageFlag string
	// StylesheetFlag is the --stylesheet flag value.
	StylesheetFlag string
	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig holds every resolved configuration value.
type ResolvedConfig struct {
	ConfigPath     ResolvedValue
	ComponentsPath ResolvedValue
	Language       ResolvedValue
	Stylesheet     ResolvedValue
}

// Values returns the resolved values in display order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.ComponentsPath, r.Language, r.Stylesheet}
}

// ResolveAll resolves every configuration value using precedence
// flag > env > config > default.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	resolved := &ResolvedConfig{
		ConfigPath:     resolveString("config", opts.ConfigFlag, "RCG_CONFIG", "", paths.ConfigFile),
		ComponentsPath: resolveString("componentsPath", opts.PathFlag, "RCG_COMPONENTS_PATH", cfg.ComponentsPath, DefaultComponentsPath),
		Language:       resolveString("language", opts.LanguageFlag, "RCG_LANGUAGE", cfg.Language, DefaultLanguage),
		Stylesheet:     resolveString("stylesheet", opts.StylesheetFlag, "RCG_STYLESHEET", cfg.Stylesheet, DefaultStylesheet),
	}

	return resolved, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
