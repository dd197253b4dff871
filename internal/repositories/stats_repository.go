package repositories

import (
	"time"

	"usta_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository upserts the per-day aggregate counters written by the
// stats worker.
type StatsRepository interface {
	UpsertUserStats(db *gorm.DB, day time.Time, registered int) error
	UpsertOrderStats(db *gorm.DB, day time.Time, created int) error
	UpsertProposalStats(db *gorm.DB, day time.Time, created int) error
	FindUserStats(db *gorm.DB, from, to time.Time) ([]models.UserStats, error)
	FindOrderStats(db *gorm.DB, from, to time.Time) ([]models.OrderStats, error)
	FindProposalStats(db *gorm.DB, from, to time.Time) ([]models.ProposalStats, error)
}

type statsRepository struct{}

func NewStatsRepository() StatsRepository {
	return &statsRepository{}
}

func (r *statsRepository) UpsertUserStats(db *gorm.DB, day time.Time, registered int) error {
	stats := models.UserStats{Date: day, RegisteredUsers: registered}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"registered_users"}),
	}).Create(&stats).Error
}

func (r *statsRepository) UpsertOrderStats(db *gorm.DB, day time.Time, created int) error {
	stats := models.OrderStats{Date: day, CreatedOrders: created}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"created_orders"}),
	}).Create(&stats).Error
}

func (r *statsRepository) UpsertProposalStats(db *gorm.DB, day time.Time, created int) error {
	stats := models.ProposalStats{Date: day, CreatedProposals: created}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"created_proposals"}),
	}).Create(&stats).Error
}

func (r *statsRepository) FindUserStats(db *gorm.DB, from, to time.Time) ([]models.UserStats, error) {
	var stats []models.UserStats
	err := db.Where("date BETWEEN ? AND ?", from, to).Order("date").Find(&stats).Error
	return stats, err
}

func (r *statsRepository) FindOrderStats(db *gorm.DB, from, to time.Time) ([]models.OrderStats, error) {
	var stats []models.OrderStats
	err := db.Where("date BETWEEN ? AND ?", from, to).Order("date").Find(&stats).Error
	return stats, err
}

func (r *statsRepository) FindProposalStats(db *gorm.DB, from, to time.Time) ([]models.ProposalStats, error) {
	var stats []models.ProposalStats
	err := db.Where("date BETWEEN ? AND ?", from, to).Order("date").Find(&stats).Error
	return stats, err
}
