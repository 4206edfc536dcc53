// Package config loads runtime configuration for the partitions CLI.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Output formats accepted by the format key.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidFormat indicates a format value other than text or json.
var ErrInvalidFormat = errors.New("invalid output format")

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Config holds all runtime configuration for a partitions session.
// Values are populated from .partitions.yaml, PARTITIONS_* env vars, and CLI
// flags.
type Config struct {
	Format        string      `mapstructure:"format"`
	Color         bool        `mapstructure:"color"`
	Verbose       bool        `mapstructure:"verbose"`
	TelemetryPath string      `mapstructure:"telemetry_path"`
	Watch         WatchConfig `mapstructure:"watch"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("format", FormatText)
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("watch.debounce", 100*time.Millisecond)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidFormat, cfg.Format, FormatText, FormatJSON)
	}
	if cfg.Watch.Debounce < 0 {
		return Config{}, fmt.Errorf("watch.debounce must not be negative, got %s", cfg.Watch.Debounce)
	}
	return cfg, nil
}
