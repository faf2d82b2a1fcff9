// Package config loads runtime configuration for the metadata generator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// LookupConfig configures one identifier lookup service.
type LookupConfig struct {
	// BaseURL overrides the public endpoint, mainly for tests.
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds each lookup request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// MaxResults caps the candidate list.
	MaxResults int `yaml:"max_results"`
}

// Timeout returns the configured timeout as a duration.
func (lc LookupConfig) Timeout() time.Duration {
	return time.Duration(lc.TimeoutSeconds) * time.Second
}

// DefaultsConfig holds the suggested values offered during entry.
type DefaultsConfig struct {
	ResourceType string `yaml:"resource_type"`
	License      string `yaml:"license"`
}

// Config is the full runtime configuration.
type Config struct {
	ORCID    LookupConfig   `yaml:"orcid"`
	ROR      LookupConfig   `yaml:"ror"`
	Defaults DefaultsConfig `yaml:"defaults"`
	// OutputDir is where generated documents are written.
	OutputDir string `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ORCID: LookupConfig{
			TimeoutSeconds: 10,
			MaxResults:     5,
		},
		ROR: LookupConfig{
			TimeoutSeconds: 10,
			MaxResults:     5,
		},
		Defaults: DefaultsConfig{
			ResourceType: "Dataset",
			License:      "CC BY 4.0",
		},
		OutputDir: "./metadata_output",
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "metagen", "config.yaml")
}

// Load reads a YAML config file over the defaults. Environment variables of
// the form ${ENV_VAR} are expanded before parsing.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	data = []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path if given, falls back to the
// conventional location, and otherwise returns the defaults.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath()); err == nil {
		return Load(DefaultPath())
	}
	return Default(), nil
}
