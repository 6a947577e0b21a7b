// Package config loads process configuration from the environment. Missing
// required values are a startup-time fatal condition; everything else has a
// default.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        int
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	LoginRatePerMinute int
	LoginBurst         int
}

// Load reads configuration from the environment. It returns an error when
// JWT_SECRET or DATABASE_URL is missing; both are required.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is missing or empty")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is missing or empty")
	}

	return &Config{
		Port:               getEnvAsInt("PORT", 3000),
		DatabaseURL:        databaseURL,
		JWTSecret:          secret,
		TokenTTL:           getEnvAsDuration("TOKEN_TTL", 24*time.Hour),
		RedisAddr:          getEnvAsString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		LoginRatePerMinute: getEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:         getEnvAsInt("LOGIN_BURST", 5),
	}, nil
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
