package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment,
// seeded from an optional .env file in the working directory. Variables
// already set in the environment win over the .env file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("BOOKSTALL_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("BOOKSTALL_SESSION_DB"); ok && v != "" {
		cfg.SessionDBPath = v
	}
	if v, ok := os.LookupEnv("BOOKSTALL_TIMEOUT"); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
