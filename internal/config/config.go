package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Incident feed
	FeedBaseURL string        `env:"FEED_BASE_URL"`
	FeedTimeout time.Duration `env:"FEED_TIMEOUT" envDefault:"15s"`

	// Weather alert feed
	WeatherBaseURL string        `env:"WEATHER_BASE_URL"`
	WeatherTimeout time.Duration `env:"WEATHER_TIMEOUT" envDefault:"15s"`

	// Social platform
	SocialBaseURL   string        `env:"SOCIAL_BASE_URL"`
	SocialAppID     string        `env:"SOCIAL_APP_ID"`
	SocialAppSecret string        `env:"SOCIAL_APP_SECRET"`
	SocialTimeout   time.Duration `env:"SOCIAL_TIMEOUT" envDefault:"10s"`

	// Sync orchestration
	SyncToken    string        `env:"SYNC_TOKEN"`
	SyncInterval time.Duration `env:"SYNC_INTERVAL" envDefault:"0"`
	SyncLeaseTTL time.Duration `env:"SYNC_LEASE_TTL" envDefault:"2m"`

	// Posting worker
	PostMaxRetries int           `env:"POST_MAX_RETRIES" envDefault:"3"`
	PostBaseDelay  time.Duration `env:"POST_BASE_DELAY" envDefault:"2s"`
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvAsInt("REDIS_DB", 0),
		FeedBaseURL:     os.Getenv("FEED_BASE_URL"),
		FeedTimeout:     getEnvAsDuration("FEED_TIMEOUT", 15*time.Second),
		WeatherBaseURL:  os.Getenv("WEATHER_BASE_URL"),
		WeatherTimeout:  getEnvAsDuration("WEATHER_TIMEOUT", 15*time.Second),
		SocialBaseURL:   os.Getenv("SOCIAL_BASE_URL"),
		SocialAppID:     os.Getenv("SOCIAL_APP_ID"),
		SocialAppSecret: os.Getenv("SOCIAL_APP_SECRET"),
		SocialTimeout:   getEnvAsDuration("SOCIAL_TIMEOUT", 10*time.Second),
		SyncToken:       os.Getenv("SYNC_TOKEN"),
		SyncInterval:    getEnvAsDuration("SYNC_INTERVAL", 0),
		SyncLeaseTTL:    getEnvAsDuration("SYNC_LEASE_TTL", 2*time.Minute),
		PostMaxRetries:  getEnvAsInt("POST_MAX_RETRIES", 3),
		PostBaseDelay:   getEnvAsDuration("POST_BASE_DELAY", 2*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.SyncToken == "" {
		return nil, fmt.Errorf("SYNC_TOKEN environment variable is required")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns an environment variable as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns an environment variable as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
