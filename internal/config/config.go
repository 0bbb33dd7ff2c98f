package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.liltrc, $XDG_CONFIG_HOME/lilt/config.toml, ~/.config/lilt/config.toml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".liltrc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths, filepath.Join(xdgConfig, "lilt", "config.toml"))

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Catalog
	if v := os.Getenv("LILT_CATALOG_BASE_URL"); v != "" {
		cfg.Catalog.BaseURL = v
	}
	if v := os.Getenv("LILT_CATALOG_CLIENT_ID"); v != "" {
		cfg.Catalog.ClientID = v
	}
	if v := os.Getenv("LILT_CATALOG_TIMEOUT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Timeout = i
		}
	}

	// Media
	if v := os.Getenv("LILT_MEDIA_SAMPLE_PATH"); v != "" {
		cfg.Media.SamplePath = v
	}

	// Authorization
	if v := os.Getenv("LILT_AUTHORIZATION_RESTRICTED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Authorization.Restricted = b
		}
	}

	// MPRIS
	if v := os.Getenv("LILT_MPRIS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MPRIS.Enabled = b
		}
	}

	// Log
	if v := os.Getenv("LILT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LILT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
