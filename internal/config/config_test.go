package config_test

import (
	"testing"
	"time"

	"fixmygame/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FMG_ADDR", "")
	t.Setenv("FMG_DAILY_LIMIT", "")
	t.Setenv("FMG_QUOTA_TTL_HOURS", "")
	t.Setenv("FMG_REDIS_ADDR", "")
	t.Setenv("FMG_AI_PROVIDER", "")
	t.Setenv("FMG_AI_MODEL", "")
	t.Setenv("FMG_AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, 3, cfg.DailyLimit)
	require.Equal(t, 48*time.Hour, cfg.QuotaTTL)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, "openai", cfg.AIProvider)
	require.Equal(t, "gpt-4.1-mini", cfg.AIModel)
	require.Equal(t, 10, cfg.AIRateLimit)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FMG_ADDR", ":9999")
	t.Setenv("FMG_DAILY_LIMIT", "5")
	t.Setenv("FMG_QUOTA_TTL_HOURS", "24")
	t.Setenv("FMG_REDIS_ADDR", "localhost:6379")
	t.Setenv("FMG_REDIS_DB", "2")
	t.Setenv("FMG_AI_PROVIDER", "anthropic")
	t.Setenv("FMG_AI_MODEL", "claude-3")
	t.Setenv("FMG_AI_API_KEY", "secret")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, 5, cfg.DailyLimit)
	require.Equal(t, 24*time.Hour, cfg.QuotaTTL)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, "anthropic", cfg.AIProvider)
	require.Equal(t, "claude-3", cfg.AIModel)
	require.Equal(t, "secret", cfg.AIAPIKey)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("FMG_DAILY_LIMIT", "lots")

	cfg := config.Load()
	require.Equal(t, 3, cfg.DailyLimit)
}

func TestLoad_OpenAIKeyFallback(t *testing.T) {
	t.Setenv("FMG_AI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "legacy-key")

	cfg := config.Load()
	require.Equal(t, "legacy-key", cfg.AIAPIKey)
}
