package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	CORSOrigin   string
	Development  bool
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET has no default: tokens signed with a known key are worthless,
// so startup fails without it.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./auth.db"),
		JWTSecret:    secret,
		CORSOrigin:   getEnv("CORS_ORIGIN", "http://localhost:3000"),
		Development:  getEnv("APP_ENV", "development") != "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
