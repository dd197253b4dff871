package repositories

import (
	"errors"

	"usta_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	// FindByIDForUpdate locks the job row (SELECT ... FOR UPDATE) so two
	// concurrent lifecycle actions cannot both act on stale state. Must be
	// called inside a transaction.
	FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error)
	FindByProposal(db *gorm.DB, proposalID string) (*models.Job, error)
	FindAll(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)
	Update(db *gorm.DB, job *models.Job) error
	AppendStatusChange(db *gorm.DB, change *models.JobStatusChange) error
	StatusHistory(db *gorm.DB, jobID string) ([]models.JobStatusChange, error)
}

type JobFilter struct {
	// PartyID restricts results to jobs where the user is customer or worker.
	PartyID  string
	OrderID  string
	Status   models.JobStatus
	Page     int
	PageSize int
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Order").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	// The order is loaded separately: FOR UPDATE must not spill onto the
	// joined orders row.
	var order models.Order
	if err := db.First(&order, "id = ?", job.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	job.Order = &order
	return &job, nil
}

func (r *jobRepository) FindByProposal(db *gorm.DB, proposalID string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "proposal_id = ?", proposalID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) FindAll(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if filter.PartyID != "" {
		query = query.
			Joins("JOIN orders ON orders.id = jobs.order_id").
			Where("jobs.assignee_id = ? OR orders.owner_id = ?", filter.PartyID, filter.PartyID)
	}
	if filter.OrderID != "" {
		query = query.Where("jobs.order_id = ?", filter.OrderID)
	}
	if filter.Status != "" {
		query = query.Where("jobs.status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.
		Preload("Order").
		Order("jobs.created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&jobs).Error
	return jobs, total, err
}

func (r *jobRepository) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *jobRepository) AppendStatusChange(db *gorm.DB, change *models.JobStatusChange) error {
	return db.Create(change).Error
}

func (r *jobRepository) StatusHistory(db *gorm.DB, jobID string) ([]models.JobStatusChange, error) {
	var history []models.JobStatusChange
	err := db.Where("job_id = ?", jobID).Order("changed_at, id").Find(&history).Error
	return history, err
}
