package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults are for local development only; set JWT_SECRET in any real deployment.
const (
	DefaultPort      = "8080"
	DefaultJWTSecret = "your_jwt_secret_key"
	DefaultJWTHours  = 24
)

type Config struct {
	Port      string
	JWTSecret []byte
	TokenTTL  time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func Load() *Config {
	cfg := &Config{
		Port:       getenv("PORT", DefaultPort),
		JWTSecret:  []byte(getenv("JWT_SECRET", DefaultJWTSecret)),
		TokenTTL:   time.Duration(DefaultJWTHours) * time.Hour,
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "blogapp"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
	}

	if v := os.Getenv("JWT_EXPIRES_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			cfg.TokenTTL = time.Duration(h) * time.Hour
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
