package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dragonpearl/reservation-app/config"
	"github.com/dragonpearl/reservation-app/models"
	"github.com/dragonpearl/reservation-app/utils"
)

// Migrate ensures the five tables exist. Safe to run on every boot.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Reservation{},
		&models.Menu{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedAdmin creates the admin account if no user with the configured username
// exists yet. Running it twice leaves exactly one admin row.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded admin user %q", admin.Username)
	return nil
}
