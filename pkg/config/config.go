package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseDSN      string
	StorageRoot      string
	JWTAccessSecret  string
	JWTRefreshSecret string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	JWTGenericExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=vtt password=vtt dbname=vtt port=5432 sslmode=disable"),
		StorageRoot:      getEnv("STORAGE_ROOT", "./uploads"),
		JWTAccessSecret:  getEnv("JWT_ACCESS_TOKEN_SECRET", "access-secret-change-in-production"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_TOKEN_SECRET", "refresh-secret-change-in-production"),
		JWTAccessExpiry:  getDuration("JWT_ACCESS_TOKEN_EXPIRATION_TIME", 10*time.Minute),
		JWTRefreshExpiry: getDuration("JWT_REFRESH_TOKEN_EXPIRATION_TIME", 168*time.Hour),
		JWTGenericExpiry: getDuration("JWT_GENERIC_TOKEN_EXPIRATION_TIME", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
