package dto

import (
	"time"

	"usta_backend/internal/models"
)

type CreateOrderRequest struct {
	CategoryID   string  `json:"category_id" validate:"required,uuid"`
	Description  string  `json:"description" validate:"required,max=5000"`
	Image        string  `json:"image,omitempty" validate:"omitempty,max=255"`
	Location     string  `json:"location,omitempty" validate:"omitempty,max=255"`
	LocationLink *string `json:"location_link,omitempty" validate:"omitempty,max=255"`
	Price        int64   `json:"price" validate:"required,min=0"`
}

type UpdateOrderRequest struct {
	Description  *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Image        *string `json:"image,omitempty" validate:"omitempty,max=255"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=255"`
	LocationLink *string `json:"location_link,omitempty" validate:"omitempty,max=255"`
	Price        *int64  `json:"price,omitempty" validate:"omitempty,min=0"`
}

type OrderListRequest struct {
	CategoryID   string `form:"category_id" validate:"omitempty,uuid"`
	Status       string `form:"status" validate:"omitempty,oneof=open closed"`
	MinPrice     *int64 `form:"min_price" validate:"omitempty,min=0"`
	MaxPrice     *int64 `form:"max_price" validate:"omitempty,min=0"`
	CreatedAfter string `form:"created_after"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

type OrderResponse struct {
	ID           string             `json:"id"`
	OwnerID      string             `json:"owner_id"`
	CategoryID   string             `json:"category_id"`
	Category     string             `json:"category,omitempty"`
	Description  string             `json:"description"`
	Image        string             `json:"image,omitempty"`
	Location     string             `json:"location,omitempty"`
	LocationLink *string            `json:"location_link,omitempty"`
	Price        int64              `json:"price"`
	Status       models.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func NewOrderResponse(order *models.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:           order.ID,
		OwnerID:      order.OwnerID,
		CategoryID:   order.CategoryID,
		Description:  order.Description,
		Image:        order.Image,
		Location:     order.Location,
		LocationLink: order.LocationLink,
		Price:        order.Price,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
	if order.Category != nil {
		resp.Category = order.Category.Name
	}
	return resp
}

type OrderListResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
