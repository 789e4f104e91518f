package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// searchNames are tried in the working directory by FindFile, in order.
var searchNames = []string{"wordalign.yaml", "wordalign.yml", ".wordalign.yaml", ".wordalign.yml"}

// LoadFile loads and parses a YAML configuration file from the given path.
// The empty path returns the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Keys missing from data keep their
// default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in values that YAML can set to empty explicitly.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Scorer == "" {
		cfg.Scorer = def.Scorer
	}

	if cfg.Pattern == "" {
		cfg.Pattern = def.Pattern
	}

	if cfg.Missing == "" {
		cfg.Missing = def.Missing
	}
}

// FindFile returns the first configuration file found in dir, or "".
func FindFile(dir string) string {
	for _, name := range searchNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
