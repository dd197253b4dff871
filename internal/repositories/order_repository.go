package repositories

import (
	"errors"
	"time"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	FindByID(db *gorm.DB, id string) (*models.Order, error)
	FindAll(db *gorm.DB, filter OrderFilter) ([]models.Order, int64, error)
	Update(db *gorm.DB, order *models.Order) error
	Delete(db *gorm.DB, id string) error
	CountCreatedOn(db *gorm.DB, day time.Time) (int64, error)
}

// OrderFilter mirrors the list-endpoint query parameters.
type OrderFilter struct {
	OwnerID      string
	CategoryID   string
	Status       models.OrderStatus
	MinPrice     *int64
	MaxPrice     *int64
	CreatedAfter *time.Time
	Page         int
	PageSize     int
}

type orderRepository struct{}

func NewOrderRepository() OrderRepository {
	return &orderRepository{}
}

func (r *orderRepository) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *orderRepository) FindByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Category").Preload("Proposals").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindAll(db *gorm.DB, filter OrderFilter) ([]models.Order, int64, error) {
	query := db.Model(&models.Order{})

	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filter.CreatedAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.
		Preload("Category").
		Order("created_at DESC").
		Limit(filter.PageSize).
		Offset((filter.Page - 1) * filter.PageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepository) Update(db *gorm.DB, order *models.Order) error {
	return db.Save(order).Error
}

func (r *orderRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Order{}, "id = ?", id).Error
}

func (r *orderRepository) CountCreatedOn(db *gorm.DB, day time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).
		Where("created_at::date = ?::date", day).
		Count(&count).Error
	return count, err
}
