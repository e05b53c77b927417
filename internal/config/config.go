package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// External recommender
	RecommenderURL string

	// Frontend
	FrontendURL string

	// Sessions
	SessionIdleTimeout time.Duration
}

func Load() (*Config, error) {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RecommenderURL:     getEnv("RECOMMENDER_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:80"),
		SessionIdleTimeout: time.Duration(getEnvInt("SESSION_IDLE_MINUTES", 30)) * time.Minute,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.RecommenderURL == "" {
		return nil, fmt.Errorf("RECOMMENDER_URL environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
