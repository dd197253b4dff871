package repositories

import (
	"errors"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAppealNotFound = errors.New("appeal not found")

type AppealRepository interface {
	Create(db *gorm.DB, appeal *models.Appeal) error
	FindByID(db *gorm.DB, id string) (*models.Appeal, error)
	FindAll(db *gorm.DB, filter AppealFilter) ([]models.Appeal, int64, error)
}

type AppealFilter struct {
	JobID string
	// PartyID restricts results to appeals the user filed or received.
	PartyID  string
	To       models.AppealType
	Page     int
	PageSize int
}

type appealRepository struct{}

func NewAppealRepository() AppealRepository {
	return &appealRepository{}
}

func (r *appealRepository) Create(db *gorm.DB, appeal *models.Appeal) error {
	return db.Create(appeal).Error
}

func (r *appealRepository) FindByID(db *gorm.DB, id string) (*models.Appeal, error) {
	var appeal models.Appeal
	if err := db.First(&appeal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppealNotFound
		}
		return nil, err
	}
	return &appeal, nil
}

func (r *appealRepository) FindAll(db *gorm.DB, filter AppealFilter) ([]models.Appeal, int64, error) {
	query := db.Model(&models.Appeal{})

	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.PartyID != "" {
		query = query.
			Joins("JOIN cvs ON cvs.id = appeals.whom_id").
			Where("appeals.owner_id = ? OR cvs.owner_id = ?", filter.PartyID, filter.PartyID)
	}
	if filter.To != "" {
		query = query.Where("appeals.to = ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var appeals []models.Appeal
	err := query.
		Order("appeals.created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&appeals).Error
	return appeals, total, err
}
