package repositories

import (
	"errors"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this job")
)

type ReviewRepository interface {
	// Create relies on the (owner_id, job_id) unique index to reject a
	// duplicate review atomically.
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByJobAndOwner(db *gorm.DB, jobID, ownerID string) (*models.Review, error)
	FindAll(db *gorm.DB, filter ReviewFilter) ([]models.Review, int64, error)
	// AverageRatingForCv returns the arithmetic mean of all review ratings
	// pointing at the Cv, and the number of reviews.
	AverageRatingForCv(db *gorm.DB, cvID string) (float64, int64, error)
}

type ReviewFilter struct {
	JobID    string
	WhomID   string
	OwnerID  string
	Rating   int
	Page     int
	PageSize int
}

type reviewRepository struct{}

func NewReviewRepository() ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *models.Review) error {
	if err := db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByJobAndOwner(db *gorm.DB, jobID, ownerID string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "job_id = ? AND owner_id = ?", jobID, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(db *gorm.DB, filter ReviewFilter) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{})

	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if filter.WhomID != "" {
		query = query.Where("whom_id = ?", filter.WhomID)
	}
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Rating != 0 {
		query = query.Where("rating = ?", filter.Rating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) AverageRatingForCv(db *gorm.DB, cvID string) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("whom_id = ?", cvID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
