package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/mdforge/pkg/config"
)

// envVarPrefix is the prefix for all mdforge environment variables.
const envVarPrefix = "MDFORGE_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with MDFORGE_ (e.g.
// MDFORGE_FLAVOR, MDFORGE_SANITIZE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FLAVOR"); v != "" {
		cfg.Flavor = config.Flavor(v)
	}
	if v := os.Getenv(envVarPrefix + "TEMPLATE"); v != "" {
		cfg.Template = v
	}
	if v := os.Getenv(envVarPrefix + "OUT_DIR"); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envVarPrefix + "SANITIZE"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSANITIZE: invalid boolean %q", envVarPrefix, v)
		}
		cfg.Sanitize = parsed
	}

	return nil
}
