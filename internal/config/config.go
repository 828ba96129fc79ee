// Package config loads and saves mdiff's CLI configuration from a YAML
// file, with environment-variable overrides and defaults applied when no
// file is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all mdiff CLI configuration.
type Config struct {
	// Algorithm is the default differ selection: "fast", "semantic", or
	// "" for automatic selection.
	Algorithm string `yaml:"algorithm"`
	// AllowTruncated makes non-smart `mdiff apply` use truncated-source
	// semantics; it is combined with the --allow-truncated flag by OR, so
	// passing the flag as false does not turn it off.
	AllowTruncated bool `yaml:"allow_truncated"`
	// IncludeMetadata is the default for whether created diffs carry a
	// Metadata block (source/destination snapshots, context, hash).
	IncludeMetadata bool `yaml:"include_metadata"`
	Logging         LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap-backed CLI logger.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns mdiff's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:       "",
		AllowTruncated:  false,
		IncludeMetadata: true,
	}
}

// Load loads configuration from a YAML file at path. A missing file is not
// an error: defaults (with environment overrides applied) are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MDIFF_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("MDIFF_VERBOSE"); v == "1" || v == "true" {
		c.Logging.Verbose = true
	}
}
