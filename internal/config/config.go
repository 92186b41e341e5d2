// Package config loads service settings from the environment, with optional
// .env support for local runs.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	// CSVSource is a filesystem path or http(s) URL to the sensor CSV.
	CSVSource string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// FetchTimeout bounds one CSV fetch over HTTP.
	FetchTimeout time.Duration
	// ReloadInterval re-runs the load cycle periodically; zero loads once.
	ReloadInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first;
// real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}

	reloadInterval, err := parseOptionalDuration("RELOAD_INTERVAL", "0")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		CSVSource:       envOrDefault("CSV_SOURCE", "data/forest_sensor_data.csv"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		FetchTimeout:    fetchTimeout,
		ReloadInterval:  reloadInterval,
	}

	if cfg.CSVSource == "" {
		return nil, fmt.Errorf("CSV_SOURCE is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseDuration reads a strictly positive duration from the environment.
func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

// parseOptionalDuration allows zero, which callers treat as disabled.
func parseOptionalDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}
