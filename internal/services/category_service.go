package services

import (
	"errors"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CategoryService interface {
	CreateCategory(name string) (*models.Category, error)
	GetCategory(id string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	UpdateCategory(id, name string) (*models.Category, error)
	DeleteCategory(id string) error
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{db: db, categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(s.db, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategory(id string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound("category", "category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAll(s.db)
}

func (s *categoryService) UpdateCategory(id, name string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.NotFound("category", "category not found")
		}
		return nil, err
	}
	category.Name = name
	if err := s.categoryRepo.Update(s.db, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id string) error {
	if _, err := s.categoryRepo.FindByID(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NotFound("category", "category not found")
		}
		return err
	}
	return s.categoryRepo.Delete(s.db, id)
}
