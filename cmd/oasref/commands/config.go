package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI defaults loaded from a TOML config file. Flags always
// override config values, and config values override built-in defaults.
type Config struct {
	// Format is the default output format (text, json, or yaml).
	Format string `toml:"format"`
	// MaxDepth is the default reference nesting limit for deref.
	MaxDepth int `toml:"max_depth"`
	// Quiet suppresses diagnostic output by default.
	Quiet bool `toml:"quiet"`
}

// ConfigEnvVar names the environment variable that overrides the config
// file location.
const ConfigEnvVar = "OASREF_CONFIG"

// LoadConfig reads the CLI config file. The path is taken from OASREF_CONFIG
// when set, otherwise <user config dir>/oasref/config.toml. A missing file is
// not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := Config{Format: FormatText}

	path := os.Getenv(ConfigEnvVar)
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "oasref", "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if err := ValidateOutputFormat(cfg.Format); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("config file %s: max_depth must not be negative", path)
	}
	return cfg, nil
}
