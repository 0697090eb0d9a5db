package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAddr    = "FRAMECHECK_ADDRESS"
	envTimeout = "FRAMECHECK_TIMEOUT"
)

// parseEnv overlays Config with environment variables, first loading a .env
// file from the working directory if one exists. A missing .env is fine;
// variables already set in the process environment take precedence (godotenv
// does not overwrite them).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAddr); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
