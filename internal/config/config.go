package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/papapumpkin/roadworks/internal/inventory"
)

// EnvPrefix is the prefix for environment variables read by viper.
const EnvPrefix = "ROADWORKS"

// Config holds all runtime configuration for a report run.
// Values are populated from .roadworks.yaml, ROADWORKS_* env vars, and CLI flags.
type Config struct {
	Verbose     bool   `mapstructure:"verbose"`
	InputFormat string `mapstructure:"input_format"`
}

// Format returns the configured inventory format.
func (c Config) Format() inventory.Format {
	return inventory.Format(c.InputFormat)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. An unknown input
// format is an error.
func Load() (Config, error) {
	viper.SetDefault("verbose", false)
	viper.SetDefault("input_format", string(inventory.FormatCSV))

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	format, err := inventory.ParseFormat(cfg.InputFormat)
	if err != nil {
		return Config{}, err
	}
	cfg.InputFormat = string(format)
	return cfg, nil
}
