// Package config provides configuration management functionality.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port                   int
	LogLevel               string
	DevMode                bool
	SessionTTL             time.Duration
	SessionCleanupSchedule string // cron expression for the session sweep
	DocsBaseURL            string // base for more-info links in error bodies
	StrictBounds           bool   // exclude items missing a bounded feature
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnvAsInt("QUAGGY_PORT", 8000),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DevMode:                getEnvAsBool("DEV_MODE", false),
		SessionTTL:             time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 720)) * time.Minute,
		SessionCleanupSchedule: getEnv("SESSION_CLEANUP_SCHEDULE", "@every 10m"),
		DocsBaseURL:            getEnv("DOCS_BASE_URL", "http://quaggy.com/api/docs"),
		StrictBounds:           getEnvAsBool("STRICT_BOUNDS", false),
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer with a fallback
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return fallback
}

// getEnvAsBool retrieves an environment variable as a boolean with a fallback
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}
