package repositories

import (
	"errors"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryRepository interface {
	Create(db *gorm.DB, category *models.Category) error
	FindByID(db *gorm.DB, id string) (*models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Update(db *gorm.DB, category *models.Category) error
	Delete(db *gorm.DB, id string) error
}

type categoryRepository struct{}

func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{}
}

func (r *categoryRepository) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}

func (r *categoryRepository) FindByID(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(db *gorm.DB, category *models.Category) error {
	return db.Save(category).Error
}

func (r *categoryRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Category{}, "id = ?", id).Error
}
