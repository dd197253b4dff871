package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/models"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("", middleware.RequireRoles(models.UserRoleCustomer), h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/mine", h.ListMyOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id", h.UpdateOrder)
		orders.POST("/:id/close", h.CloseOrder)
		orders.POST("/:id/reopen", h.ReopenOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

// CreateOrder godoc
// @Summary      Post a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateOrderRequest true "Order payload"
// @Success      201 {object} dto.OrderResponse
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.orderService.CreateOrder(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.OrderListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.orderService.ListOrders(&req, "")
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	var req dto.OrderListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.orderService.ListOrders(&req, middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	resp, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.orderService.UpdateOrder(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) CloseOrder(c *gin.Context) {
	resp, err := h.orderService.CloseOrder(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ReopenOrder(c *gin.Context) {
	resp, err := h.orderService.ReopenOrder(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	err := h.orderService.DeleteOrder(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
