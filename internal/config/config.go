// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog paths
	Roles      string `json:"roles,omitempty"`      // Path to job role catalog (CSV or JSON)
	Questions  string `json:"questions,omitempty"`  // Path to question catalog (CSV or JSON)
	Vocabulary string `json:"vocabulary,omitempty"` // Path to skill vocabulary file (optional; built-in default)

	// Analysis
	TopN     int    `json:"top_n,omitempty"`    // Questions per category
	Category string `json:"category,omitempty"` // Restrict to one question category

	// Behavior
	Port    int  `json:"port,omitempty"`    // HTTP server port
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	for _, path := range []string{c.Roles, c.Questions, c.Vocabulary} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Roles == "" {
		result.Roles = defaults.Roles
	}
	if result.Questions == "" {
		result.Questions = defaults.Questions
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.Category == "" {
		result.Category = defaults.Category
	}

	// Int fields: use default if zero
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
