package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SlogLevel maps the configured LOG_LEVEL onto a slog level,
// defaulting to info for unknown values.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// APIConfig describes the ShiftEase backend this web tier talks to.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig holds the signing key and lifetime of the session cookie.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	apiTimeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_TIMEOUT: %w", err)
	}

	config.API = APIConfig{
		BaseURL: getEnv("API_BASE_URL", "http://localhost:5000"),
		Timeout: apiTimeout,
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	config.Session = SessionConfig{
		Secret: getEnv("SESSION_SECRET", ""),
		TTL:    sessionTTL,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
