package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Human)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GPSTIME_FORMAT", "json")
	t.Setenv("GPSTIME_LOG_LEVEL", "debug")
	t.Setenv("GPSTIME_HUMAN", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Human)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadIgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		t.Setenv("GPSTIME_FORMAT", "xml")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("GPSTIME_LOG_LEVEL", "chatty")
		_, err := Load()
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}
	for level, want := range tests {
		cfg := &Config{LogLevel: level}
		assert.Equal(t, want, cfg.SlogLevel(), level)
	}
}
