// Package config loads process configuration from the environment. No
// variable is mandatory; every field falls back to a sensible default.
package config

import (
	"os"
	"strings"
)

// Config is the service's runtime configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string
	// SeedOnStart enables populating the leaderboard from the hard-coded
	// sample dataset at startup.
	SeedOnStart bool
	// LogLevel controls ambient log verbosity. "debug" enables per-request
	// detail in the access log; anything else keeps it compact.
	LogLevel string
}

// Debug reports whether LogLevel requests verbose, per-request logging.
func (c Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// FromEnv reads configuration from the environment, applying defaults for
// anything unset.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Port:        port,
		SeedOnStart: os.Getenv("SEED_ON_START") == "true",
		LogLevel:    logLevel,
	}
}
