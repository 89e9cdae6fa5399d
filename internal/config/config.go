// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StorageVersion is the envelope version written by this build.
const StorageVersion = "3.0"

// Config holds all runtime settings.
type Config struct {
	DBPath          string
	StorageVersion  string
	LogUseCases     bool
	ReadinessWindow int
	RestTick        time.Duration
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		DBPath:          defaultDBPath(),
		StorageVersion:  StorageVersion,
		LogUseCases:     false,
		ReadinessWindow: 30,
		RestTick:        time.Second,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset or invalid values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("APEX_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("APEX_STORAGE_VERSION"); v != "" {
		cfg.StorageVersion = v
	}
	if v := os.Getenv("APEX_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("APEX_READINESS_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReadinessWindow = n
		}
	}
	if v := os.Getenv("APEX_REST_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RestTick = time.Duration(n) * time.Millisecond
		}
	}

	return cfg
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".apex", "apex.db")
	}
	return filepath.Join(home, ".apex", "apex.db")
}
