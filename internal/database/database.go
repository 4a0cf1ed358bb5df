package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hr-dashboard/internal/models"
)

// Connect opens a gorm connection to Postgres and configures the underlying
// pool. TranslateError is enabled so the storage layer can match on gorm's
// sentinel errors instead of driver-specific codes.
func Connect(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Candidate{},
		&models.Application{},
		&models.Interview{},
		&models.EmailTemplate{},
	)
}
