// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ranking"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Credentials
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	CompanyName        string  `json:"company_name,omitempty"`        // Company name used in interview emails
	ShortlistThreshold float64 `json:"shortlist_threshold,omitempty"` // Minimum score for shortlisting (0.0-1.0)
	Model              string  `json:"model,omitempty"`               // Override for the standard-tier model
	Verbose            bool    `json:"verbose,omitempty"`             // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// FromEnv builds a Config from environment variables. Callers typically load
// a .env file first (via godotenv) so local development keys are picked up.
func FromEnv() Config {
	return Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CompanyName: os.Getenv("COMPANY_NAME"),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.ShortlistThreshold < 0 || c.ShortlistThreshold > 1 {
		return fmt.Errorf("config error: 'shortlist_threshold' must be between 0.0 and 1.0")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CompanyName == "" {
		result.CompanyName = defaults.CompanyName
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Float fields
	if result.ShortlistThreshold == 0 {
		if defaults.ShortlistThreshold > 0 {
			result.ShortlistThreshold = defaults.ShortlistThreshold
		} else {
			result.ShortlistThreshold = ranking.DefaultShortlistThreshold
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
