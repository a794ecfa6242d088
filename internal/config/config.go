// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the rcg configuration.
// Loaded from ~/.rcg/config.yaml.
type Config struct {
	// ComponentsPath is the directory components are generated into.
	// Env: RCG_COMPONENTS_PATH, Default: components
	ComponentsPath string `mapstructure:"componentsPath" yaml:"componentsPath,omitempty" json:"componentsPath,omitempty"`

	// Language is the preselected base language (jsx or tsx).
	// Env: RCG_LANGUAGE, Default: tsx
	Language string `mapstructure:"language" yaml:"language,omitempty" json:"language,omitempty"`

	// Stylesheet is the preselected stylesheet language (css, scss or sass).
	// Env: RCG_STYLESHEET, Default: scss
	Stylesheet string `mapstructure:"stylesheet" yaml:"stylesheet,omitempty" json:"stylesheet,omitempty"`

	// Template controls whether generated files are filled from templates.
	// Env: RCG_TEMPLATE, Default: true
	Template *bool `mapstructure:"template" yaml:"template,omitempty" json:"template,omitempty"`

	// CheckExisting rejects names whose component directory already exists.
	// Env: RCG_CHECK_EXISTING, Default: true
	CheckExisting *bool `mapstructure:"checkExisting" yaml:"checkExisting,omitempty" json:"checkExisting,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// Defaults used when neither flags, environment nor the config file set a value.
const (
	DefaultComponentsPath = "components"
	DefaultLanguage       = "tsx"
	DefaultStylesheet     = "scss"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `rcg config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		ComponentsPath: DefaultComponentsPath,
		Language:       DefaultLanguage,
		Stylesheet:     DefaultStylesheet,
		Template:       boolPtr(true),
		CheckExisting:  boolPtr(true),
		Log: LogConfig{
			Timestamps: boolPtr(true),
		},
	}
}

// WithDefaults returns a copy of c with unset fields taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}

	out := *c
	if out.ComponentsPath == "" {
		out.ComponentsPath = d.ComponentsPath
	}
	if out.Language == "" {
		out.Language = d.Language
	}
	if out.Stylesheet == "" {
		out.Stylesheet = d.Stylesheet
	}
	if out.Template == nil {
		out.Template = d.Template
	}
	if out.CheckExisting == nil {
		out.CheckExisting = d.CheckExisting
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = d.Log.Timestamps
	}
	return &out
}

// TemplatesEnabled reports whether files are filled from templates.
func (c *Config) TemplatesEnabled() bool {
	return c == nil || c.Template == nil || *c.Template
}

// CheckExistingEnabled reports whether existing component directories are rejected.
func (c *Config) CheckExistingEnabled() bool {
	return c == nil || c.CheckExisting == nil || *c.CheckExisting
}

func boolPtr(b bool) *bool {
	return &b
}
