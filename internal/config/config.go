// Package config loads gpstime CLI settings using koanf.
// Precedence: command-line flags → GPSTIME_* environment → defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they become keys.
// GPSTIME_LOG_LEVEL maps to log_level.
const EnvPrefix = "GPSTIME_"

// ErrInvalidConfig is returned when a loaded value fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds CLI configuration.
type Config struct {
	Format   string `koanf:"format"`    // "text" | "json"
	LogLevel string `koanf:"log_level"` // "debug" | "info" | "warn" | "error"
	Human    bool   `koanf:"human"`     // group digits in text output
}

var (
	validFormats   = []string{"text", "json"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

func defaults() *Config {
	return &Config{
		Format:   "text",
		LogLevel: "warn",
	}
}

// Load reads configuration from the environment on top of defaults.
func Load() (*Config, error) {
	return load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}))
}

func load(p koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(p, nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !slices.Contains(validFormats, c.Format) {
		return fmt.Errorf("%w: format %q must be one of %v", ErrInvalidConfig, c.Format, validFormats)
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: log_level %q must be one of %v", ErrInvalidConfig, c.LogLevel, validLogLevels)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level. Unknown values map to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
