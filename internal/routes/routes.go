package routes

import (
	"usta_backend/internal/handlers"
	"usta_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter assembles the middleware chain and mounts every handler group
// under /api/v1.
func SetupRouter(db *gorm.DB, h *handlers.AppHandlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	{
		h.Health.RegisterRoutes(api)
		h.Auth.RegisterRoutes(api)
		h.User.RegisterRoutes(api)
		h.Profile.RegisterRoutes(api)
		h.Category.RegisterRoutes(api)
		h.Order.RegisterRoutes(api)
		h.Proposal.RegisterRoutes(api)
		h.Job.RegisterRoutes(api)
		h.Appeal.RegisterRoutes(api)
		h.Review.RegisterRoutes(api)
		h.Stats.RegisterRoutes(api)
	}

	return router
}
