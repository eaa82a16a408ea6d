package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr     string
	ShareBaseURL string
	OpenAIAPIKey string
	Database     DatabaseConfig
	Assets       AssetsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// AssetsConfig holds cover-image storage settings. An empty bucket
// disables cover uploads.
type AssetsConfig struct {
	S3Bucket string
	S3Region string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		ShareBaseURL: getEnv("SHARE_BASE_URL", "http://localhost:8080"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "lingolist"),
			User:     getEnv("DB_USER", "lingolist"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Assets: AssetsConfig{
			S3Bucket: os.Getenv("ASSETS_S3_BUCKET"),
			S3Region: getEnv("ASSETS_S3_REGION", "eu-central-1"),
		},
	}

	// Validate required fields
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
