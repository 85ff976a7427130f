package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
}

// LoadEnv loads a .env file when one is present. Real environment
// variables always win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}
}

// FromEnv builds the config from the environment.
func FromEnv() Config {
	return Config{
		Port:        Getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  os.Getenv("STUDYDECK_DB"),
	}
}

// Getenv reads key from the environment, returning fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
