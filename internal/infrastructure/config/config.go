// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Warehouse (PostgreSQL)
	PostgresDSN string

	// User store (MongoDB)
	MongoURI string
	MongoDB  string

	// Auth
	SecretKey          string
	AccessTokenExpiry  time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	FrontendRedirect   string

	// Flight data provider
	AviationstackKey     string
	AviationstackBaseURL string

	// Assistant
	GeminiAPIKey string
	GeminiModel  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres dbname=flightwarehouse port=5432 sslmode=disable"),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "flightwarehouse"),

		SecretKey:          getEnv("SECRET_KEY", "change-me"),
		AccessTokenExpiry:  time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60)) * time.Minute,
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:  getEnv("GOOGLE_REDIRECT_URI", ""),
		FrontendRedirect:   getEnv("FRONTEND_REDIRECT_URL", "http://localhost:3000/"),

		AviationstackKey:     getEnv("AVIATIONSTACK_ACCESS_KEY", ""),
		AviationstackBaseURL: getEnv("AVIATIONSTACK_BASE_URL", "https://api.aviationstack.com/v1"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
