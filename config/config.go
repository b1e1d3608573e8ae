package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Error loading .env file")
	}
	return os.Getenv(key)
}
