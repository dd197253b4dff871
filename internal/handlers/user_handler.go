package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/models"
	"usta_backend/internal/repositories"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMe)
		users.GET("/:id", h.GetUser)
		users.GET("", middleware.RequireRoles(), h.ListUsers)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	resp, err := h.userService.GetUser(middleware.GetUserID(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	resp, err := h.userService.GetUser(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	filter := repositories.UserFilter{
		Role:   models.UserRole(c.Query("role")),
		Search: c.Query("search"),
	}
	filter.Page = queryInt(c, "page")
	filter.PageSize = queryInt(c, "page_size")

	resp, err := h.userService.ListUsers(filter)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.userService.UpdateUser(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	err := h.userService.DeleteUser(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
