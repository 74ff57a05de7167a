package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("APP_PORT") == "" {
		Logger.Info("APP_PORT is not set, defaulting to 8080")
		os.Setenv("APP_PORT", "8080")
	}
}
