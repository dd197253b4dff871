package repositories

import (
	"errors"

	"usta_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCvNotFound       = errors.New("cv not found")
	ErrCvAlreadyExists  = errors.New("cv already exists for this user")
	ErrBankCardNotFound = errors.New("bank card not found")
	ErrPassportNotFound = errors.New("passport not found")
)

// ProfileRepository persists Cv, BankCard and Passport records.
type ProfileRepository interface {
	CreateCv(db *gorm.DB, cv *models.Cv) error
	FindCvByID(db *gorm.DB, id string) (*models.Cv, error)
	FindCvByOwner(db *gorm.DB, ownerID string) (*models.Cv, error)
	UpdateCv(db *gorm.DB, cv *models.Cv) error
	DeleteCv(db *gorm.DB, id string) error
	UpdateCvRating(db *gorm.DB, cvID string, rating int) error
	CountCvReviews(db *gorm.DB, cvID string) (int64, error)
	CountCvAppeals(db *gorm.DB, cvID string) (int64, error)

	CreateBankCard(db *gorm.DB, card *models.BankCard) error
	FindBankCardByID(db *gorm.DB, id string) (*models.BankCard, error)
	FindBankCardsByOwner(db *gorm.DB, ownerID string) ([]models.BankCard, error)
	UpdateBankCard(db *gorm.DB, card *models.BankCard) error
	DeleteBankCard(db *gorm.DB, id string) error

	CreatePassport(db *gorm.DB, passport *models.Passport) error
	FindPassportByID(db *gorm.DB, id string) (*models.Passport, error)
	FindPassportsByOwner(db *gorm.DB, ownerID string) ([]models.Passport, error)
	UpdatePassport(db *gorm.DB, passport *models.Passport) error
	DeletePassport(db *gorm.DB, id string) error
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

// ---------------- Cv ----------------

func (r *profileRepository) CreateCv(db *gorm.DB, cv *models.Cv) error {
	if err := db.Create(cv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCvAlreadyExists
		}
		return err
	}
	return nil
}

func (r *profileRepository) FindCvByID(db *gorm.DB, id string) (*models.Cv, error) {
	var cv models.Cv
	if err := db.First(&cv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCvNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func (r *profileRepository) FindCvByOwner(db *gorm.DB, ownerID string) (*models.Cv, error) {
	var cv models.Cv
	if err := db.First(&cv, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCvNotFound
		}
		return nil, err
	}
	return &cv, nil
}

func (r *profileRepository) UpdateCv(db *gorm.DB, cv *models.Cv) error {
	return db.Save(cv).Error
}

func (r *profileRepository) DeleteCv(db *gorm.DB, id string) error {
	return db.Delete(&models.Cv{}, "id = ?", id).Error
}

func (r *profileRepository) UpdateCvRating(db *gorm.DB, cvID string, rating int) error {
	return db.Model(&models.Cv{}).Where("id = ?", cvID).Update("rating", rating).Error
}

func (r *profileRepository) CountCvReviews(db *gorm.DB, cvID string) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("whom_id = ?", cvID).Count(&count).Error
	return count, err
}

func (r *profileRepository) CountCvAppeals(db *gorm.DB, cvID string) (int64, error) {
	var count int64
	err := db.Model(&models.Appeal{}).Where("whom_id = ?", cvID).Count(&count).Error
	return count, err
}

// ---------------- BankCard ----------------

func (r *profileRepository) CreateBankCard(db *gorm.DB, card *models.BankCard) error {
	return db.Create(card).Error
}

func (r *profileRepository) FindBankCardByID(db *gorm.DB, id string) (*models.BankCard, error) {
	var card models.BankCard
	if err := db.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (r *profileRepository) FindBankCardsByOwner(db *gorm.DB, ownerID string) ([]models.BankCard, error) {
	var cards []models.BankCard
	err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&cards).Error
	return cards, err
}

func (r *profileRepository) UpdateBankCard(db *gorm.DB, card *models.BankCard) error {
	return db.Save(card).Error
}

func (r *profileRepository) DeleteBankCard(db *gorm.DB, id string) error {
	return db.Delete(&models.BankCard{}, "id = ?", id).Error
}

// ---------------- Passport ----------------

func (r *profileRepository) CreatePassport(db *gorm.DB, passport *models.Passport) error {
	return db.Create(passport).Error
}

func (r *profileRepository) FindPassportByID(db *gorm.DB, id string) (*models.Passport, error) {
	var passport models.Passport
	if err := db.First(&passport, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPassportNotFound
		}
		return nil, err
	}
	return &passport, nil
}

func (r *profileRepository) FindPassportsByOwner(db *gorm.DB, ownerID string) ([]models.Passport, error) {
	var passports []models.Passport
	err := db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&passports).Error
	return passports, err
}

func (r *profileRepository) UpdatePassport(db *gorm.DB, passport *models.Passport) error {
	return db.Save(passport).Error
}

func (r *profileRepository) DeletePassport(db *gorm.DB, id string) error {
	return db.Delete(&models.Passport{}, "id = ?", id).Error
}
