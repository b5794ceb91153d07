package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	StaticDir string
	LogLevel  string

	DailyLimit int
	QuotaTTL   time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AIProvider  string
	AIAPIKey    string
	AIBaseURL   string
	AIModel     string
	AIRateLimit int
}

func Load() Config {
	apiKey := os.Getenv("FMG_AI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	staticDir := os.Getenv("FMG_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:      getEnv("FMG_ADDR", ":8080"),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  getEnv("FMG_LOG_LEVEL", "info"),

		DailyLimit: intEnv("FMG_DAILY_LIMIT", 3),
		QuotaTTL:   time.Duration(intEnv("FMG_QUOTA_TTL_HOURS", 48)) * time.Hour,

		RedisAddr:     os.Getenv("FMG_REDIS_ADDR"),
		RedisPassword: os.Getenv("FMG_REDIS_PASSWORD"),
		RedisDB:       intEnv("FMG_REDIS_DB", 0),

		AIProvider:  getEnv("FMG_AI_PROVIDER", "openai"),
		AIAPIKey:    apiKey,
		AIBaseURL:   os.Getenv("FMG_AI_BASE_URL"),
		AIModel:     getEnv("FMG_AI_MODEL", "gpt-4.1-mini"),
		AIRateLimit: intEnv("FMG_AI_RATE_LIMIT", 10),
	}
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
