// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is used when no server address is configured.
const DefaultBaseURL = "http://localhost:8000"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment variables.
type Config struct {
	BaseURL        string `json:"base_url,omitempty"`        // Tracker backend address
	CredentialsDir string `json:"credentials_dir,omitempty"` // Where the session credentials file lives
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP request timeout
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

// FromEnv builds a configuration from environment variables:
// JOBTRACK_API_URL, JOBTRACK_CREDENTIALS_DIR, JOBTRACK_TIMEOUT_SECONDS.
func FromEnv() Config {
	cfg := Config{
		BaseURL:        os.Getenv("JOBTRACK_API_URL"),
		CredentialsDir: os.Getenv("JOBTRACK_CREDENTIALS_DIR"),
	}
	if raw := os.Getenv("JOBTRACK_TIMEOUT_SECONDS"); raw != "" {
		var seconds int
		if _, err := fmt.Sscanf(raw, "%d", &seconds); err == nil {
			cfg.TimeoutSeconds = seconds
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values under CLI flags and env vars.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.CredentialsDir == "" {
		result.CredentialsDir = defaults.CredentialsDir
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	if result.BaseURL == "" {
		result.BaseURL = DefaultBaseURL
	}
	return result
}

// Timeout returns the configured HTTP timeout, or zero to let the client
// apply its own default.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultCredentialsDir returns the per-user directory for the
// credentials file when none is configured.
func DefaultCredentialsDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, "jobtrack"), nil
}
