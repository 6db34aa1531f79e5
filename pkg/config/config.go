// Package config defines the configuration types for mdforge. These are
// pure data structures; discovery and environment handling live in
// internal/configloader.
package config

import "fmt"

// Flavor specifies the Markdown flavor used when a placeholder applies
// the markdown filter.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid reports whether the flavor is one of the supported values.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}

// Config is the root configuration for mdforge.
type Config struct {
	// Flavor selects the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// Template is the default HTML template path, used when --template is
	// not given on the command line.
	Template string `yaml:"template"`

	// OutDir is where rendered .html files are written. Empty means
	// alongside each source file.
	OutDir string `yaml:"out_dir"`

	// Sanitize pipes each rendered document through an HTML sanitizer.
	Sanitize bool `yaml:"sanitize"`

	// LogLevel sets the logger verbosity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	return &Config{
		Flavor:   FlavorCommonMark,
		LogLevel: "info",
	}
}

// Validate checks the configuration for values that cannot be used.
func (c *Config) Validate() error {
	if c.Flavor != "" && !c.Flavor.IsValid() {
		return fmt.Errorf("invalid flavor %q: want %q or %q", c.Flavor, FlavorCommonMark, FlavorGFM)
	}
	return nil
}
