package config

import (
	"os"
	"strconv"
	"time"

	"causalbench/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Search   SearchConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// SearchConfig holds grid-search execution settings
type SearchConfig struct {
	Workers      int
	TrialTimeout time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: getEnv("CAUSALBENCH_DATABASE_URL", ""),
		},
		Server: ServerConfig{
			Port: getEnv("CAUSALBENCH_PORT", "8080"),
		},
		Search: SearchConfig{
			Workers:      getEnvInt("CAUSALBENCH_SEARCH_WORKERS", 1),
			TrialTimeout: getEnvDuration("CAUSALBENCH_TRIAL_TIMEOUT", 0),
		},
	}

	if cfg.Search.Workers < 1 {
		return nil, errors.ConfigInvalid("CAUSALBENCH_SEARCH_WORKERS must be at least 1")
	}
	if cfg.Search.TrialTimeout < 0 {
		return nil, errors.ConfigInvalid("CAUSALBENCH_TRIAL_TIMEOUT must not be negative")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
