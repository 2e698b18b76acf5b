package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every knob the app and worker processes read at startup.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string

	ZoneCacheTTL time.Duration
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file. Unset keys fall back to local-development defaults.
func LoadConfig() Config {
	// Missing .env is fine in containerized deployments.
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort:      envOr("HTTP_PORT", "8080"),
		DBHost:        envOr("DB_HOST", "localhost"),
		DBPort:        envOr("DB_PORT", "5432"),
		DBUser:        envOr("DB_USER", "postgres"),
		DBPassword:    envOr("DB_PASSWORD", "postgres"),
		DBName:        envOr("DB_NAME", "logistima"),
		DBSslMode:     envOr("DB_SSLMODE", "disable"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: envOr("REDIS_PASSWORD", ""),
		ZoneCacheTTL:  durationOr("ZONE_CACHE_TTL", time.Hour),
	}
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
