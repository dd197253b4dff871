package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"
	"usta_backend/internal/services"
	"usta_backend/internal/services/dto"
	"usta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats", middleware.AuthMiddleware(), middleware.RequireRoles())
	{
		stats.GET("", h.GetStats)
	}
}

// GetStats godoc
// @Summary      Daily platform counters for a date range
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Param        from query string false "Start date (YYYY-MM-DD)"
// @Param        to   query string false "End date (YYYY-MM-DD)"
// @Success      200 {array} dto.DailyStatsResponse
// @Router       /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	var req dto.StatsRangeRequest
	if !h.BindQuery(c, &req) {
		return
	}

	resp, err := h.statsService.GetRange(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
