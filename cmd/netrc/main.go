package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load a .env file when present; real environment variables win.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
