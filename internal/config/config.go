package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	StorageBackend string
	BoltPath       string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	LogLevel       string
	Debug          bool

	// Email (Amazon SES)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	AppBaseURL   string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", "bolt")),
		BoltPath:       getEnv("BOLT_PATH", "./edumarket.bolt"),
		DatabaseType:   strings.ToLower(getEnv("DB_TYPE", "sqlite")),
		DatabaseURL:    getEnv("DB_URL", ""),
		DatabasePath:   getEnv("DB_PATH", "./edumarket.db"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Debug:          getEnv("DEBUG", "false") == "true",
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:   getEnv("SES_FROM_EMAIL", ""),
		SESFromName:    getEnv("SES_FROM_NAME", "EduMarket"),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:5173"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
