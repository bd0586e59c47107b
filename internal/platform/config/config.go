package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Addr             string
	Environment      string
	DataFile         string
	FrontendDir      string
	GeminiAPIKey     string
	GeminiModel      string
	AssistantTimeout time.Duration
}

func Load() Config {
	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		Environment:      getEnv("APP_ENV", "development"),
		DataFile:         getEnv("DATA_FILE", "data/hrpro.json"),
		FrontendDir:      getEnv("FRONTEND_DIR", "frontend/dist"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AssistantTimeout: getEnvDuration("ASSISTANT_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return fmt.Errorf("DATA_FILE is required")
	}
	if c.AssistantTimeout <= 0 {
		return fmt.Errorf("ASSISTANT_TIMEOUT must be positive")
	}
	if c.GeminiAPIKey != "" && strings.TrimSpace(c.GeminiModel) == "" {
		return fmt.Errorf("GEMINI_MODEL is required when GEMINI_API_KEY is set")
	}
	return nil
}
