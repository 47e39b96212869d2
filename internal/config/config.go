package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	RemoteBaseURL       string
	RemoteTimeout       time.Duration
	RefreshInterval     time.Duration
	TelemetryStaleAfter time.Duration
	AppEnv              string
}

const (
	defaultRemoteTimeout       = 15 * time.Second
	defaultRefreshInterval     = 15 * time.Second
	defaultTelemetryStaleAfter = 45 * time.Second
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		RemoteBaseURL:       os.Getenv("REMOTE_BASE_URL"),
		RemoteTimeout:       durationEnv("REMOTE_TIMEOUT", defaultRemoteTimeout),
		RefreshInterval:     durationEnv("REFRESH_INTERVAL", defaultRefreshInterval),
		TelemetryStaleAfter: durationEnv("TELEMETRY_STALE_AFTER", defaultTelemetryStaleAfter),
		AppEnv:              os.Getenv("APP_ENV"),
	}

	if cfg.RemoteBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using default %s", key, raw, fallback)
		return fallback
	}
	return d
}
