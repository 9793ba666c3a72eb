// Package config loads process configuration for the responsive images
// server.
//
// Settings come from environment variables, parsed with caarlos0/env, and
// from the YAML sets file they point to. Global defaults are layered:
// built-in values, then the file's "defaults" section, then the environment.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sets, defaults, err := cfg.LoadSets()
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// SetsFile is the YAML file declaring the responsive image sets.
	SetsFile string `env:"RESPONSIVE_IMAGES_SETS_FILE" envDefault:"responsive-images.yml"`

	// LogLevel is "debug" or "info".
	LogLevel string `env:"RESPONSIVE_IMAGES_LOG_LEVEL" envDefault:"info"`

	// Global default overrides. Unset values fall back to the sets file,
	// then the built-in defaults.
	DefaultFormat     string  `env:"RESPONSIVE_IMAGES_DEFAULT_FORMAT"`
	DefaultMethod     string  `env:"RESPONSIVE_IMAGES_DEFAULT_METHOD"`
	DefaultDimensions []int   `env:"RESPONSIVE_IMAGES_DEFAULT_DIMENSIONS" envSeparator:","`
	DefaultCSSClasses *string `env:"RESPONSIVE_IMAGES_DEFAULT_CSS_CLASSES"`
}

// Load parses environment variables into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}
