package database

import (
	"docyo/internal/logger"
	"docyo/internal/models"

	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB) error {
	logger.Info("Running database migrations")

	err := db.AutoMigrate(
		&models.Profile{},
		&models.MedicalHistory{},
		&models.Lifestyle{},
		&models.Vital{},
		&models.Doctor{},
	)
	if err != nil {
		logger.Error("Database migration failed", "error", err)
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
