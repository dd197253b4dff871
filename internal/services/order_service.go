package services

import (
	"errors"
	"time"

	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(actorID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetOrder(id string) (*dto.OrderResponse, error)
	ListOrders(req *dto.OrderListRequest, ownerID string) (*dto.OrderListResponse, error)
	UpdateOrder(actorID string, isAdmin bool, id string, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	CloseOrder(actorID string, isAdmin bool, id string) (*dto.OrderResponse, error)
	ReopenOrder(actorID string, isAdmin bool, id string) (*dto.OrderResponse, error)
	DeleteOrder(actorID string, isAdmin bool, id string) error
}

type orderService struct {
	db           *gorm.DB
	txm          TxManager
	orderRepo    repositories.OrderRepository
	categoryRepo repositories.CategoryRepository
}

func NewOrderService(db *gorm.DB, txm TxManager, orderRepo repositories.OrderRepository, categoryRepo repositories.CategoryRepository) OrderService {
	return &orderService{db: db, txm: txm, orderRepo: orderRepo, categoryRepo: categoryRepo}
}

func (s *orderService) CreateOrder(actorID string, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if _, err := s.categoryRepo.FindByID(s.db, req.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, apperrors.ReferenceError("order", "category not found")
		}
		return nil, err
	}

	order := &models.Order{
		OwnerID:      actorID,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		Image:        req.Image,
		Location:     req.Location,
		LocationLink: req.LocationLink,
		Price:        req.Price,
		Status:       models.OrderStatusOpen,
	}
	if err := s.orderRepo.Create(s.db, order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (s *orderService) GetOrder(id string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.NotFound("order", "order not found")
		}
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (s *orderService) ListOrders(req *dto.OrderListRequest, ownerID string) (*dto.OrderListResponse, error) {
	filter := repositories.OrderFilter{
		OwnerID:    ownerID,
		CategoryID: req.CategoryID,
		Status:     models.OrderStatus(req.Status),
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
	}
	if req.CreatedAfter != "" {
		parsed, err := time.Parse("2006-01-02", req.CreatedAfter)
		if err != nil {
			return nil, apperrors.ValidationFailed("order", "created_after must be YYYY-MM-DD")
		}
		filter.CreatedAfter = &parsed
	}
	filter.Page, filter.PageSize = normalizePagination(req.Page, req.PageSize)

	orders, total, err := s.orderRepo.FindAll(s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderListResponse{
		Orders:     make([]*dto.OrderResponse, 0, len(orders)),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages(total, filter.PageSize),
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, dto.NewOrderResponse(&orders[i]))
	}
	return resp, nil
}

func (s *orderService) UpdateOrder(actorID string, isAdmin bool, id string, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	var order *models.Order
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.orderRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.NotFound("order", "order not found")
			}
			return err
		}
		if order.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		if !order.IsOpen() {
			return apperrors.InvalidState("order", "closed orders cannot be edited")
		}

		if req.Description != nil {
			order.Description = *req.Description
		}
		if req.Image != nil {
			order.Image = *req.Image
		}
		if req.Location != nil {
			order.Location = *req.Location
		}
		if req.LocationLink != nil {
			order.LocationLink = req.LocationLink
		}
		if req.Price != nil {
			order.Price = *req.Price
		}

		return s.orderRepo.Update(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (s *orderService) CloseOrder(actorID string, isAdmin bool, id string) (*dto.OrderResponse, error) {
	var order *models.Order
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.orderRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.NotFound("order", "order not found")
			}
			return err
		}
		if order.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		if !order.IsOpen() {
			return apperrors.InvalidState("order", "order is already closed")
		}

		order.Status = models.OrderStatusClosed
		return s.orderRepo.Update(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (s *orderService) ReopenOrder(actorID string, isAdmin bool, id string) (*dto.OrderResponse, error) {
	var order *models.Order
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		var err error
		order, err = s.orderRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.NotFound("order", "order not found")
			}
			return err
		}
		if order.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		if order.IsOpen() {
			return apperrors.InvalidState("order", "order is already open")
		}

		order.Status = models.OrderStatusOpen
		return s.orderRepo.Update(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

func (s *orderService) DeleteOrder(actorID string, isAdmin bool, id string) error {
	return s.txm.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrOrderNotFound) {
				return apperrors.NotFound("order", "order not found")
			}
			return err
		}
		if order.OwnerID != actorID && !isAdmin {
			return apperrors.ErrInsufficientPermissions
		}
		return s.orderRepo.Delete(tx, id)
	})
}
