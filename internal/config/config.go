// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
)

// Config holds the settings the API server needs to start.
type Config struct {
	Port        string
	DatabaseURL string
	GeminiKey   string
	GeminiModel string
}

// Load reads configuration from environment variables. PORT and
// GEMINI_MODEL have defaults; DATABASE_URL and GEMINI_API_KEY are
// required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOr("PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: envOr("GEMINI_MODEL", "gemini-2.0-flash"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	if cfg.GeminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required but not set")
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
