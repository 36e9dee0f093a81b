// Package config contains everything related to configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Source    string
	Countries string
	UserAgent string
	LogLevel  string
	Timeout   time.Duration
	Width     int
	NoColor   bool
}

// Default values
const (
	DefaultSource    = "https://www.worldometers.info/coronavirus/"
	DefaultUserAgent = "covid-tracker"

	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "warn"
)

// Load reads configuration from .env files and environment variables.
func Load() (*Config, error) {
	// Try loading .env from multiple locations
	envPaths := getEnvPaths()
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		Source:    getEnvString("TRACKER_URL", DefaultSource),
		Countries: getEnvString("TRACKER_COUNTRIES", ""),
		UserAgent: getEnvString("TRACKER_USER_AGENT", DefaultUserAgent),
		LogLevel:  getEnvString("TRACKER_LOG_LEVEL", defaultLogLevel),
		Timeout:   getEnvDuration("TRACKER_TIMEOUT", defaultTimeout),
		Width:     getEnvInt("TRACKER_WIDTH", 0),
		NoColor:   os.Getenv("NO_COLOR") != "",
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("TRACKER_TIMEOUT must be positive, got %v", cfg.Timeout)
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	// Current directory
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	// Home directory locations
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "covid-tracker", ".env"),
			filepath.Join(home, ".covid-tracker", ".env"),
		)
	}

	// Parent directories (useful for development)
	if cwd, err := os.Getwd(); err == nil {
		parent := filepath.Dir(cwd)
		paths = append(paths, filepath.Join(parent, ".env"))
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves a non-negative integer environment variable or returns
// the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n >= 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvDuration retrieves a duration environment variable or returns the default.
// Accepts values like "30s", "1m", "500ms".
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Try parsing as seconds if no unit specified
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
