package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool defaults for anything not overridden via env.
const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 5
	defaultConnLifetime = 30 * time.Minute
	defaultConnIdleTime = 5 * time.Minute
)

// LoadConfigFromEnv reads DB_* variables, falling back to local-dev
// defaults for anything unset.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		User:            getEnvOrDefault("DB_USER", "maestro"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        getEnvOrDefault("DB_NAME", "maestro"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:    intEnvOrDefault("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		MaxIdleConns:    intEnvOrDefault("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		ConnMaxLifetime: defaultConnLifetime,
		ConnMaxIdleTime: defaultConnIdleTime,
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Port = port
	return cfg, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnvOrDefault(key string, defaultVal int) int {
	if val, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return val
	}
	return defaultVal
}
