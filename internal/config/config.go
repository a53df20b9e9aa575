// Package config provides configuration loading and validation for the
// matching service.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config represents the service configuration read from environment
// variables. Everything except DATABASE_URL has a default.
type Config struct {
	Port            int    // HTTP listen port
	DatabaseURL     string // PostgreSQL connection URL (required)
	Workers         int    // bulk runner fan-out limit
	EligiblePoolCap int    // fetch cap on the eligible candidate pool
	WeightsFile     string // optional JSON file overriding the weight vector
	LogJSON         bool   // emit JSON logs instead of console output
	Debug           bool   // enable debug-level logging
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            8080,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Workers:         4,
		EligiblePoolCap: 1000,
		WeightsFile:     os.Getenv("MATCH_WEIGHTS_FILE"),
		LogJSON:         os.Getenv("LOG_JSON") == "true",
		Debug:           os.Getenv("LOG_DEBUG") == "true",
	}

	var err error
	if cfg.Port, err = intFromEnv("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intFromEnv("MATCH_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.EligiblePoolCap, err = intFromEnv("MATCH_POOL_CAP", cfg.EligiblePoolCap); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.Workers < 1 {
		return fmt.Errorf("MATCH_WORKERS must be at least 1, got: %d", c.Workers)
	}
	if c.EligiblePoolCap < 1 {
		return fmt.Errorf("MATCH_POOL_CAP must be at least 1, got: %d", c.EligiblePoolCap)
	}
	return nil
}
