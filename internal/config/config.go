package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "weddingdesk.db"
	defaultJWTTTL        = "168h"
	defaultLocalStore    = "data/local_store.json"
	defaultAlertInterval = "1m"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	LocalStorePath string
	AlertInterval  time.Duration
}

// Load reads configuration from the environment, with a best-effort .env
// overlay for local development. JWT_SECRET has no default: a missing secret
// is a startup error, not a silently insecure service.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:      strings.TrimSpace(os.Getenv("JWT_SECRET")),
		LocalStorePath: getEnv("LOCAL_STORE_PATH", defaultLocalStore),
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.AlertInterval, err = parseDurationEnv("ALERT_INTERVAL", defaultAlertInterval)
	if err != nil {
		return nil, err
	}
	if cfg.AlertInterval <= 0 {
		return nil, fmt.Errorf("ALERT_INTERVAL must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
