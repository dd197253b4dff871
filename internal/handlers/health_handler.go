package handlers

import (
	"net/http"

	"usta_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health reports liveness and database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	db := middleware.DBFromContext(c.Request.Context())
	if db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "database": "unconfigured"})
		return
	}

	sqlDB, err := db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
