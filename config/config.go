package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
// AWS fields are optional; presigned upload URLs are disabled when the
// bucket is unset.
type Config struct {
	Port          string
	DatabaseURL   string
	SessionSecret string
	JWTSecret     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	BaseURL        string
	FrontendOrigin string

	AWSRegion string
	AWSBucket string
}

func Load() (*Config, error) {
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️  Warning: No .env file found. Using system environment variables.")
		}
	}

	cfg := &Config{
		Port:               getenv("PORT", "8080"),
		DatabaseURL:        os.Getenv("DB_URL"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		FrontendOrigin:     getenv("FRONTEND_ORIGIN", "http://localhost:3000"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSBucket:          os.Getenv("AWS_BUCKET_NAME"),
	}
	cfg.BaseURL = getenv("BASE_URL", "http://localhost:"+cfg.Port)

	for name, val := range map[string]string{
		"DB_URL":         cfg.DatabaseURL,
		"SESSION_SECRET": cfg.SessionSecret,
		"JWT_SECRET":     cfg.JWTSecret,
	} {
		if val == "" {
			return nil, fmt.Errorf("%s is not set in environment variables", name)
		}
	}

	return cfg, nil
}

// PresignEnabled reports whether file creation should mint S3 upload URLs.
func (c *Config) PresignEnabled() bool {
	return c.AWSBucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
