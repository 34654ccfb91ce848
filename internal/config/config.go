package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wravell/logcask/core"
)

type Config struct {
	Path string `yaml:"path"`
}

// Load loads configuration from a YAML file if path is provided,
// otherwise it falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	// If path was explicitly provided, the file must be readable.
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if cfg.Path == "" {
		cfg.Path = core.DefaultLogFileName
	}

	return &cfg, nil
}

// applyEnvOverrides allows environment variables to override YAML config values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGCASK_DB"); v != "" {
		cfg.Path = v
	}
}
