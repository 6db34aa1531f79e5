// Package configloader discovers, loads, and merges mdforge configuration
// from config files and environment variables.
package configloader

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/mdforge/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where config discovery starts.
	WorkingDir string

	// ExplicitPath skips discovery and loads exactly this file. A missing
	// explicit file is an error; a missing discovered file is not.
	ExplicitPath string
}

// Result is the outcome of configuration loading.
type Result struct {
	// Config is the merged configuration.
	Config *config.Config

	// Source is the path of the loaded config file, or empty when only
	// defaults and environment applied.
	Source string
}

// Load builds the effective configuration: defaults, then the config file
// (explicit or discovered), then environment overrides.
func Load(opts LoadOptions) (*Result, error) {
	cfg := config.Default()
	result := &Result{Config: cfg}

	path := opts.ExplicitPath
	if path == "" {
		path = Discover(opts.WorkingDir)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			fileCfg, err := config.FromYAML(data)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
			merge(cfg, fileCfg)
			result.Source = path
		case opts.ExplicitPath != "" || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := LoadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// merge overlays the non-zero fields of src onto dst.
func merge(dst, src *config.Config) {
	if src.Flavor != "" {
		dst.Flavor = src.Flavor
	}
	if src.Template != "" {
		dst.Template = src.Template
	}
	if src.OutDir != "" {
		dst.OutDir = src.OutDir
	}
	if src.Sanitize {
		dst.Sanitize = true
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}
