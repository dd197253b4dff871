package dto

import "usta_backend/internal/models"

type RegisterRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"first_name" validate:"max=30"`
	LastName    string   `json:"last_name" validate:"max=30"`
	Roles       []string `json:"roles" validate:"required,min=1,dive,oneof=Customer Worker"`
	PhoneNumber *string  `json:"phone_number,omitempty" validate:"omitempty,max=14"`
	Language    string   `json:"language,omitempty" validate:"omitempty,oneof=Russian Uzbek"`
	BirthDate   *string  `json:"birth_date,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	FullName    string   `json:"full_name"`
	Roles       []string `json:"roles"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Language    string   `json:"language,omitempty"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		FullName:    user.FullName(),
		Roles:       user.Roles,
		PhoneNumber: user.PhoneNumber,
		Language:    user.Language,
	}
}
