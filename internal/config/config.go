package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Check    CheckConfig    `toml:"check"`
	Display  DisplayConfig  `toml:"display"`
	Tracking TrackingConfig `toml:"tracking"`
	Tee      TeeConfig      `toml:"tee"`
}

type CheckConfig struct {
	Project string `toml:"project"`
	TscPath string `toml:"tsc_path"`
}

type DisplayConfig struct {
	Color bool `toml:"color"`
}

type TrackingConfig struct {
	DBPath string `toml:"db_path"`
}

type TeeConfig struct {
	Enabled     bool   `toml:"enabled"`
	Mode        string `toml:"mode"` // "failures", "always", "never"
	MaxFiles    int    `toml:"max_files"`
	MaxFileSize int64  `toml:"max_file_size"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Check: CheckConfig{
			Project: ".",
			TscPath: "node_modules/.bin/tsc",
		},
		Display: DisplayConfig{
			Color: true,
		},
		Tracking: TrackingConfig{
			DBPath: filepath.Join(home, ".local", "share", "tscx", "history.db"),
		},
		Tee: TeeConfig{
			Enabled:     true,
			Mode:        "failures",
			MaxFiles:    20,
			MaxFileSize: 1 << 20, // 1MB
		},
	}
}

// Load reads config from file, merging with defaults. Returns defaults if
// the file is missing.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path resolves the config file location, honoring the TSCX_CONFIG override.
func Path() string {
	if p := os.Getenv("TSCX_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "tscx", "config.toml")
}
