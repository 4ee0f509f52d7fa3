// Package config loads application configuration from a .env file and the
// process environment. Environment variables always win over defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment does not override them.
const (
	defaultWebhookURL     = "https://automations.skylightlabs.io/webhook/landing-chat"
	defaultWarmupDelay    = 1200 * time.Millisecond
	defaultRequestTimeout = 30 * time.Second
)

// Config holds all runtime settings for the application.
type Config struct {
	ChatWebhookURL string
	LogFilePath    string
	WarmupDelay    time.Duration
	RequestTimeout time.Duration
}

// Load reads .env (if present) and assembles the configuration.
func Load() *Config {
	// Missing .env is fine, the system environment is enough.
	_ = godotenv.Load()

	return &Config{
		ChatWebhookURL: getEnv("SKYLIGHT_CHAT_WEBHOOK_URL", defaultWebhookURL),
		LogFilePath:    getEnv("SKYLIGHT_LOG_FILE", defaultLogPath()),
		WarmupDelay:    getEnvDuration("SKYLIGHT_WARMUP_MS", defaultWarmupDelay),
		RequestTimeout: getEnvDuration("SKYLIGHT_REQUEST_TIMEOUT_MS", defaultRequestTimeout),
	}
}

func defaultLogPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "skylight", "skylight.log")
	}
	return "skylight.log"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
