package services

import (
	"errors"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	CreateCv(actorID string, req *dto.CreateCvRequest) (*dto.CvResponse, error)
	GetCv(id string) (*dto.CvResponse, error)
	GetCvByOwner(ownerID string) (*dto.CvResponse, error)
	UpdateCv(actorID string, isAdmin bool, id string, req *dto.UpdateCvRequest) (*dto.CvResponse, error)
	DeleteCv(actorID string, isAdmin bool, id string) error

	CreateBankCard(actorID string, req *dto.CreateBankCardRequest) (*models.BankCard, error)
	ListBankCards(actorID string) ([]models.BankCard, error)
	DeleteBankCard(actorID string, isAdmin bool, id string) error

	CreatePassport(actorID string, req *dto.CreatePassportRequest) (*models.Passport, error)
	ListPassports(actorID string) ([]models.Passport, error)
	DeletePassport(actorID string, isAdmin bool, id string) error
}

type profileService struct {
	db          *gorm.DB
	txm         TxManager
	profileRepo repositories.ProfileRepository
}

func NewProfileService(db *gorm.DB, txm TxManager, profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{db: db, txm: txm, profileRepo: profileRepo}
}

func (s *profileService) CreateCv(actorID string, req *dto.CreateCvRequest) (*dto.CvResponse, error) {
	cv := &models.Cv{
		OwnerID: actorID,
		Image:   req.Image,
		Bio:     req.Bio,
		Rating:  models.RatingMin,
	}
	if err := s.profileRepo.CreateCv(s.db, cv); err != nil {
		if errors.Is(err, repositories.ErrCvAlreadyExists) {
			return nil, apperrors.Conflict("profile", "cv already exists")
		}
		return nil, err
	}
	return dto.NewCvResponse(cv, 0, 0), nil
}

func (s *profileService) GetCv(id string) (*dto.CvResponse, error) {
	cv, err := s.profileRepo.FindCvByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.NotFound("profile", "cv not found")
		}
		return nil, err
	}
	return s.cvResponse(cv)
}

func (s *profileService) GetCvByOwner(ownerID string) (*dto.CvResponse, error) {
	cv, err := s.profileRepo.FindCvByOwner(s.db, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCvNotFound) {
			return nil, apperrors.NotFound("profile", "cv not found")
		}
		return nil, err
	}
	return s.cvResponse(cv)
}

func (s *profileService) cvResponse(cv *models.Cv) (*dto.CvResponse, error) {
	reviews, err := s.profileRepo.CountCvReviews(s.db, cv.ID)
	if err != nil {
		return nil, err
	}
	appeals, err := s.profileRepo.CountCvAppeals(s.db, cv.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewCvResponse(cv, reviews, appeals), nil
}

func (s *profileService) UpdateCv(actorID string, isAdmin bool, id string, req *dto.UpdateCvRequest) (*dto.CvResponse, error) {
	var cv *models.Cv
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		cv, err = s.profileRepo.FindCvByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrCvNotFound) {
				return apperrors.NotFound("profile", "cv not found")
			}
			return err
		}
		if cv.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}

		if req.Image != nil {
			cv.Image = *req.Image
		}
		if req.Bio != nil {
			cv.Bio = *req.Bio
		}

		return s.profileRepo.UpdateCv(tx, cv)
	})
	if err != nil {
		return nil, err
	}
	return s.cvResponse(cv)
}

func (s *profileService) DeleteCv(actorID string, isAdmin bool, id string) error {
	return s.txm.Transaction(func(tx *gorm.DB) error {
		cv, err := s.profileRepo.FindCvByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrCvNotFound) {
				return apperrors.NotFound("profile", "cv not found")
			}
			return err
		}
		if cv.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		return s.profileRepo.DeleteCv(tx, id)
	})
}

func (s *profileService) CreateBankCard(actorID string, req *dto.CreateBankCardRequest) (*models.BankCard, error) {
	card := &models.BankCard{
		OwnerID:    actorID,
		HolderName: req.HolderName,
		CardNumber: req.CardNumber,
	}
	if err := s.profileRepo.CreateBankCard(s.db, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *profileService) ListBankCards(actorID string) ([]models.BankCard, error) {
	return s.profileRepo.FindBankCardsByOwner(s.db, actorID)
}

func (s *profileService) DeleteBankCard(actorID string, isAdmin bool, id string) error {
	card, err := s.profileRepo.FindBankCardByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBankCardNotFound) {
			return apperrors.NotFound("profile", "bank card not found")
		}
		return err
	}
	if card.OwnerID != actorID && !isAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return s.profileRepo.DeleteBankCard(s.db, id)
}

func (s *profileService) CreatePassport(actorID string, req *dto.CreatePassportRequest) (*models.Passport, error) {
	passport := &models.Passport{
		OwnerID:          actorID,
		Series:           req.Series,
		Number:           req.Number,
		DateOfIssue:      req.DateOfIssue,
		IssuingAuthority: req.IssuingAuthority,
		Pinfl:            req.Pinfl,
	}
	if err := s.profileRepo.CreatePassport(s.db, passport); err != nil {
		return nil, err
	}
	return passport, nil
}

func (s *profileService) ListPassports(actorID string) ([]models.Passport, error) {
	return s.profileRepo.FindPassportsByOwner(s.db, actorID)
}

func (s *profileService) DeletePassport(actorID string, isAdmin bool, id string) error {
	passport, err := s.profileRepo.FindPassportByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPassportNotFound) {
			return apperrors.NotFound("profile", "passport not found")
		}
		return err
	}
	if passport.OwnerID != actorID && !isAdmin {
		return apperrors.ErrInsufficientPermissions
	}
	return s.profileRepo.DeletePassport(s.db, id)
}
