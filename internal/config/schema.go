package config

// Config is the root configuration structure.
type Config struct {
	Catalog       CatalogConfig       `toml:"catalog"`
	Media         MediaConfig         `toml:"media"`
	Authorization AuthorizationConfig `toml:"authorization"`
	MPRIS         MPRISConfig         `toml:"mpris"`
	Log           LogConfig           `toml:"log"`
}

// CatalogConfig holds remote catalog service settings.
type CatalogConfig struct {
	BaseURL  string `toml:"base_url"`
	ClientID string `toml:"client_id"`
	Timeout  int    `toml:"timeout"`
}

// MediaConfig holds local playback settings.
type MediaConfig struct {
	SamplePath string `toml:"sample_path"`
}

// AuthorizationConfig holds music access policy settings.
type AuthorizationConfig struct {
	Restricted bool `toml:"restricted"`
}

// MPRISConfig holds desktop media-key integration settings.
type MPRISConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
