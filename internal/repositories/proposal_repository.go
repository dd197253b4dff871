package repositories

import (
	"errors"
	"time"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalAlreadyExists = errors.New("proposal already exists for this order")
)

type ProposalRepository interface {
	// Create relies on the (owner_id, order_id) unique index: a concurrent
	// duplicate submission surfaces as ErrProposalAlreadyExists rather than a
	// second row.
	Create(db *gorm.DB, proposal *models.Proposal) error
	FindByID(db *gorm.DB, id string) (*models.Proposal, error)
	FindAll(db *gorm.DB, filter ProposalFilter) ([]models.Proposal, int64, error)
	Update(db *gorm.DB, proposal *models.Proposal) error
	Delete(db *gorm.DB, id string) error
	ExistsForOwnerAndOrder(db *gorm.DB, ownerID, orderID string) (bool, error)
	CountCreatedOn(db *gorm.DB, day time.Time) (int64, error)
}

type ProposalFilter struct {
	OwnerID  string
	OrderID  string
	Status   models.ProposalStatus
	Page     int
	PageSize int
}

type proposalRepository struct{}

func NewProposalRepository() ProposalRepository {
	return &proposalRepository{}
}

func (r *proposalRepository) Create(db *gorm.DB, proposal *models.Proposal) error {
	if err := db.Create(proposal).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProposalAlreadyExists
		}
		return err
	}
	return nil
}

func (r *proposalRepository) FindByID(db *gorm.DB, id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := db.First(&proposal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) FindAll(db *gorm.DB, filter ProposalFilter) ([]models.Proposal, int64, error) {
	query := db.Model(&models.Proposal{})

	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.OrderID != "" {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proposals []models.Proposal
	err := query.
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&proposals).Error
	return proposals, total, err
}

func (r *proposalRepository) Update(db *gorm.DB, proposal *models.Proposal) error {
	return db.Save(proposal).Error
}

func (r *proposalRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Proposal{}, "id = ?", id).Error
}

func (r *proposalRepository) ExistsForOwnerAndOrder(db *gorm.DB, ownerID, orderID string) (bool, error) {
	var count int64
	err := db.Model(&models.Proposal{}).
		Where("owner_id = ? AND order_id = ?", ownerID, orderID).
		Count(&count).Error
	return count > 0, err
}

func (r *proposalRepository) CountCreatedOn(db *gorm.DB, day time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Proposal{}).
		Where("created_at::date = ?::date", day).
		Count(&count).Error
	return count, err
}
