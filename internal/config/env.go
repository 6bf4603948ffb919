package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment, after
// merging an optional .env file from the working directory. Unset variables
// leave the current value in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.LocalPath = getEnv("WELLNESS_LOCAL_PATH", cfg.LocalPath)
	cfg.DatabaseDSN = getEnv("WELLNESS_DATABASE_DSN", cfg.DatabaseDSN)
	cfg.SecretKey = getEnv("WELLNESS_SECRET_KEY", cfg.SecretKey)
	cfg.AccessTokenTTL = getDuration("WELLNESS_ACCESS_TTL", cfg.AccessTokenTTL)
	cfg.RefreshTokenTTL = getDuration("WELLNESS_REFRESH_TTL", cfg.RefreshTokenTTL)
	cfg.AuthLatency = getDuration("WELLNESS_AUTH_LATENCY", cfg.AuthLatency)
	cfg.APILatency = getDuration("WELLNESS_API_LATENCY", cfg.APILatency)
	cfg.SearchDebounce = getDuration("WELLNESS_SEARCH_DEBOUNCE", cfg.SearchDebounce)
	cfg.RefreshCheckInterval = getDuration("WELLNESS_REFRESH_INTERVAL", cfg.RefreshCheckInterval)
	cfg.ExpiryWindow = getDuration("WELLNESS_EXPIRY_WINDOW", cfg.ExpiryWindow)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
