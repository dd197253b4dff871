package dto

type UpdateUserRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=30"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=30"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=14"`
	Language    *string `json:"language,omitempty" validate:"omitempty,oneof=Russian Uzbek"`
}

type UserListResponse struct {
	Users      []*UserResponse `json:"users"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
