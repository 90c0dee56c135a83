// database.go - Handles database connection, migration and admin seeding

package database

import (
	"vehicle-rental-backend/config"
	"vehicle-rental-backend/models"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
)

// bcryptCost matches the hashing cost used for regular signups.
const bcryptCost = 12

// Connect opens the database, runs migrations and seeds the default
// admin if configured. The returned handle is meant to be injected
// into the services; there is no package-level singleton.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// The foreign_keys pragma must ride the DSN so every pooled
	// connection enforces ON DELETE CASCADE.
	dsn := cfg.DBPath + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true, // Surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}

	// Create the three tables if needed (idempotent)
	if err := db.AutoMigrate(&models.User{}, &models.Vehicle{}, &models.Booking{}); err != nil {
		return nil, err
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		return nil, err
	}
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedDefaultAdmin creates a default admin user if configured and none
// exists. Credentials come from the environment, never from code.
func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcryptCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Phone:    cfg.AdminPhone,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
