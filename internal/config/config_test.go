package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoach/glucoach/internal/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "FRONTEND_ORIGIN", "DB_DRIVER", "DB_FILE_PATH", "AI_PROVIDER", "AI_TIMEOUT_SECONDS", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "data/glucoach.db", cfg.DB.FilePath)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
	assert.Equal(t, logger.LevelInfo, cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_ORIGIN", "https://glucoach.example.com")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_NAME", "glucoach_prod")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("AI_TIMEOUT_SECONDS", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Contains(t, cfg.Server.AllowedOrigins, "https://glucoach.example.com")
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "glucoach_prod", cfg.DB.DBName)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10*time.Second, cfg.AI.Timeout)
	assert.Equal(t, logger.LevelDebug, cfg.Logger.Level)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "nope")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)

	t.Setenv("AI_TIMEOUT_SECONDS", "-5")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logger.LogLevel
	}{
		{"debug", logger.LevelDebug},
		{"info", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"warning", logger.LevelWarn},
		{"error", logger.LevelError},
		{"ERROR", logger.LevelError},
		{"bogus", logger.LevelInfo},
		{"", logger.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLogLevel(tt.input), "level %q", tt.input)
	}
}
