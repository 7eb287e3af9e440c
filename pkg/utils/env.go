package utils

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file if one exists in the working directory.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv returns the value of the environment variable key, or def
// when the variable is unset or empty.
func GetEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
