package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AppealHandler struct {
	BaseHandler
	appealService services.AppealService
}

func NewAppealHandler(appealService services.AppealService) *AppealHandler {
	return &AppealHandler{appealService: appealService}
}

func (h *AppealHandler) RegisterRoutes(r *gin.RouterGroup) {
	appeals := r.Group("/appeals", middleware.AuthMiddleware())
	{
		appeals.POST("", h.FileAppeal)
		appeals.GET("", h.ListAppeals)
		appeals.GET("/:id", h.GetAppeal)
	}
}

// FileAppeal godoc
// @Summary      File an appeal against the counterparty on a job
// @Description  The job is forced into warning until the dispute settles.
// @Tags         appeals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.FileAppealRequest true "Appeal payload"
// @Success      201 {object} dto.AppealResponse
// @Router       /appeals [post]
func (h *AppealHandler) FileAppeal(c *gin.Context) {
	var req dto.FileAppealRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.appealService.FileAppeal(middleware.GetUserID(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AppealHandler) ListAppeals(c *gin.Context) {
	var req dto.AppealListRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.appealService.ListAppeals(middleware.GetUserID(c), middleware.IsAdmin(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AppealHandler) GetAppeal(c *gin.Context) {
	resp, err := h.appealService.GetAppeal(middleware.GetUserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
