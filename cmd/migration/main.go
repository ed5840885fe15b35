package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/kiranakonnect/kirana-konnect/internal/infrastructure/database"
)

func main() {
	// Environment variables from .env when present
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	if err := database.RunMigrations("migrations"); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	log.Println("Migrations applied successfully")
}
