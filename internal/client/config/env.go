package config

import (
	"os"
	"time"
)

// parseEnv overlays cfg with values from environment variables. Combined
// with godotenv in main, this lets a local .env file configure the client.
//
// Recognized variables:
//
//	MAILPILOT_SERVER_URL        base URL of the backend API
//	MAILPILOT_REQUEST_TIMEOUT   per-request timeout, e.g. "15s"
//	MAILPILOT_DATABASE_PATH     local sqlite database file
func parseEnv(cfg *Config) {
	if v := os.Getenv("MAILPILOT_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("MAILPILOT_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("MAILPILOT_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
