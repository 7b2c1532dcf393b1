package database

import (
	"fmt"
	"log"

	"github.com/alinasr783/studyabroad-buddy/config"
	"github.com/alinasr783/studyabroad-buddy/model"
	"github.com/alinasr783/studyabroad-buddy/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when the env is unset or an admin already exists.
func (s *Seeder) SeedAdmin() error {
	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	if getEnv.ADMIN_EMAIL == "" || getEnv.ADMIN_PASSWORD == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := s.db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(getEnv.ADMIN_PASSWORD)
	if err != nil {
		return err
	}

	name := getEnv.ADMIN_NAME
	if name == "" {
		name = "Administrator"
	}

	admin := model.Admin{
		Email:        getEnv.ADMIN_EMAIL,
		PasswordHash: hash,
		Name:         name,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin account %s", admin.Email)
	return nil
}
