package app

import (
	"employee-api/internal/employee"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, zap.L())
	}

	return nil
}
