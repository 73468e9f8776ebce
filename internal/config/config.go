package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	SessionStore   string // memory, file or redis
	SessionPath    string
	RedisURL       string
	RequestTimeout int // seconds
	LogLevel       string
	Locale         string
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000/api"),
		SessionStore:   getEnv("SESSION_STORE", "file"),
		SessionPath:    getEnv("SESSION_PATH", defaultSessionPath()),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379"),
		RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT", 30),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Locale:         getEnv("LOCALE", "en"),
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trollyctl"
	}
	return filepath.Join(home, ".trollyctl", "session")
}

func getEnv(key, defaultValue string) string {
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
