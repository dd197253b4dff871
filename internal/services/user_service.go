package services

import (
	"errors"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetUser(id string) (*dto.UserResponse, error)
	ListUsers(filter repositories.UserFilter) (*dto.UserListResponse, error)
	UpdateUser(actorID string, isAdmin bool, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(actorID string, isAdmin bool, id string) error
}

type userService struct {
	db       *gorm.DB
	txm      TxManager
	userRepo repositories.UserRepository
}

func NewUserService(db *gorm.DB, txm TxManager, userRepo repositories.UserRepository) UserService {
	return &userService{db: db, txm: txm, userRepo: userRepo}
}

func (s *userService) GetUser(id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("user", "user not found")
		}
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) ListUsers(filter repositories.UserFilter) (*dto.UserListResponse, error) {
	filter.Page, filter.PageSize = normalizePagination(filter.Page, filter.PageSize)

	users, total, err := s.userRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users:      make([]*dto.UserResponse, 0, len(users)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) UpdateUser(actorID string, isAdmin bool, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if actorID != id && !isAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	var user *models.User
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = s.userRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.NotFound("user", "user not found")
			}
			return err
		}

		if req.FirstName != nil {
			user.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			user.LastName = *req.LastName
		}
		if req.PhoneNumber != nil {
			user.PhoneNumber = req.PhoneNumber
		}
		if req.Language != nil {
			user.Language = *req.Language
		}

		return s.userRepo.Update(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) DeleteUser(actorID string, isAdmin bool, id string) error {
	if actorID != id && !isAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	return s.txm.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByID(tx, id); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return apperrors.NotFound("user", "user not found")
			}
			return err
		}
		if err := s.userRepo.DeleteUserRefreshTokens(tx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, id)
	})
}
