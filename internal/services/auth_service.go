package services

import (
	"errors"
	"time"

	"usta_backend/internal/auth"
	"usta_backend/internal/config"
	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type authService struct {
	db       *gorm.DB
	txm      TxManager
	userRepo repositories.UserRepository
}

func NewAuthService(db *gorm.DB, txm TxManager, userRepo repositories.UserRepository) AuthService {
	return &authService{db: db, txm: txm, userRepo: userRepo}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	for _, r := range req.Roles {
		role := models.UserRole(r)
		if !models.ValidRole(role) || role == models.UserRoleAdmin {
			return nil, apperrors.ValidationFailed("auth", "role must be Customer or Worker")
		}
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Roles:        pq.StringArray(req.Roles),
		PhoneNumber:  req.PhoneNumber,
		Language:     req.Language,
	}

	if req.BirthDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, apperrors.ValidationFailed("auth", "birth_date must be YYYY-MM-DD")
		}
		date := datatypes.Date(parsed)
		user.BirthDate = &date
	}

	var resp *dto.AuthResponse
	err = s.txm.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return err
		}
		resp, err = s.issueTokens(tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(s.db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(s.db, user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new one is issued together with a fresh access token.
func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	var resp *dto.AuthResponse
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		stored, err := s.userRepo.FindRefreshToken(tx, req.RefreshToken)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInvalidToken
			}
			return err
		}
		if time.Now().After(stored.ExpiresAt) {
			_ = s.userRepo.DeleteRefreshToken(tx, stored.Token)
			return apperrors.ErrInvalidToken
		}

		user, err := s.userRepo.FindByID(tx, stored.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.ErrInvalidToken
			}
			return err
		}

		if err := s.userRepo.DeleteRefreshToken(tx, stored.Token); err != nil {
			return err
		}
		resp, err = s.issueTokens(tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *authService) Logout(refreshToken string) error {
	return s.userRepo.DeleteRefreshToken(s.db, refreshToken)
}

func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()

	access, err := auth.GenerateToken(user.ID, user.Roles, time.Duration(cfg.JWT.TTL)*time.Minute)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.userRepo.CreateRefreshToken(db, refresh); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         dto.NewUserResponse(user),
	}, nil
}
