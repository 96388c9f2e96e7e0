package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	API_BASE_URL  string
	TOKEN_DB_PATH string
	LOG_LEVEL     string

	MOCKAPI_ADDR           string
	MOCKAPI_DATABASE_URL   string
	MOCKAPI_DB_PATH        string
	MOCKAPI_JWT_SECRET     string
	MOCKAPI_UPLOAD_DIR     string
	MOCKAPI_ADMIN_PASSWORD string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		API_BASE_URL:  getenv("API_BASE_URL", "http://localhost:4000"),
		TOKEN_DB_PATH: getenv("TOKEN_DB_PATH", ".bakeryadmin.db"),
		LOG_LEVEL:     getenv("LOG_LEVEL", "info"),

		MOCKAPI_ADDR:           getenv("MOCKAPI_ADDR", ":4000"),
		MOCKAPI_DATABASE_URL:   os.Getenv("MOCKAPI_DATABASE_URL"),
		MOCKAPI_DB_PATH:        getenv("MOCKAPI_DB_PATH", "mockapi.db"),
		MOCKAPI_JWT_SECRET:     getenv("MOCKAPI_JWT_SECRET", "dev-secret"),
		MOCKAPI_UPLOAD_DIR:     getenv("MOCKAPI_UPLOAD_DIR", "public/uploads"),
		MOCKAPI_ADMIN_PASSWORD: getenv("MOCKAPI_ADMIN_PASSWORD", "admin123"),
	}

	return config, nil
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
