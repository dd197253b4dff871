package database

import (
	"usta_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Cv{},
		&models.BankCard{},
		&models.Passport{},
		&models.Category{},
		&models.Order{},
		&models.Proposal{},
		&models.Job{},
		&models.JobStatusChange{},
		&models.Appeal{},
		&models.Review{},
		&models.UserStats{},
		&models.OrderStats{},
		&models.ProposalStats{},
	)
}
