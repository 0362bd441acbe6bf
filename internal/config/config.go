// Package config loads application configuration from the environment
// (FOTOSAVES_* variables) with sensible defaults. Command-line flags
// override whatever the environment provides.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	// Pattern selects the gallery pages inside the target folder.
	Pattern string `envconfig:"PATTERN" default:"Fotos_*.html"`

	// Sheet is the worksheet name inside the output workbook.
	Sheet string `envconfig:"SHEET" default:"Images"`

	// Output overrides the derived <folder>_Image_Listing.xlsx path
	// when non-empty.
	Output string `envconfig:"OUTPUT" default:""`

	Logging LogConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from FOTOSAVES_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("fotosaves", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns the
// defaults when the environment is unusable.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Pattern: "Fotos_*.html",
		Sheet:   "Images",
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
