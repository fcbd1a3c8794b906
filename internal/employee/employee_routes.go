package employee

import (
	"employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/employee")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.GetAll,
		)

		employees.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
