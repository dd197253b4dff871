package main

import (
	"usta_backend/internal/app"
	"usta_backend/internal/logger"
)

// @title           Usta Marketplace API
// @version         1.0
// @description     Marketplace backend where customers post orders, workers
// @description     bid with proposals, and approved proposals become jobs
// @description     with a mutual payment and review lifecycle.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err.Error())
	}
}
