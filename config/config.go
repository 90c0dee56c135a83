// config.go - Handles configuration for the project

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv" // Loads .env files into the environment
)

type Config struct { // Config struct holds all configuration values
	Port          string        // HTTP listen port
	DBPath        string        // Path to the SQLite database file
	JWTSecret     string        // Secret key for signing bearer tokens
	TokenTTL      time.Duration // Access token lifetime
	SweepInterval time.Duration // How often the auto-return sweep runs

	// Default admin seeding (opt-in via env)
	CreateAdmin   bool
	AdminName     string
	AdminEmail    string
	AdminPassword string
	AdminPhone    string
}

func Load() *Config { // Load reads config from environment variables or uses defaults
	_ = godotenv.Load() // Best effort; a missing .env is fine

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "rental.db"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:      getDuration("TOKEN_TTL_HOURS", 7*24, time.Hour),
		SweepInterval: getDuration("SWEEP_INTERVAL_MINUTES", 10, time.Minute),
		CreateAdmin:   getEnv("CREATE_ADMIN", "") == "true",
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@rental.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminPhone:    getEnv("ADMIN_PHONE", ""),
	}
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback int64, unit time.Duration) time.Duration { // Helper for duration env vars
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
			return time.Duration(n) * unit
		}
	}
	return time.Duration(fallback) * unit
}
