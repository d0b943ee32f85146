// Package config loads server configuration from the environment, with
// optional .env file support for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds server-level settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// LogLevel is the logrus level name (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present; missing files are
// not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:     getEnv("GIDAS_ADDR", ":8080"),
		LogLevel: getEnv("GIDAS_LOG_LEVEL", "info"),
	}
}

// NewLogger builds a logrus logger for the configured level.
func NewLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stdout
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return log
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
