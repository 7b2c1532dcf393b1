package main

import (
	"log"

	"github.com/alinasr783/studyabroad-buddy/database"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the bootstrap admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Safe to run repeatedly; existing admins are never overwritten.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	if err := database.NewSeeder(db).SeedAll(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
