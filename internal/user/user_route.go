package user

import (
	"go-sapmock/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, logger *zap.Logger) {
	users := r.Group("/sap/users")
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("", handler.GetUsers)
		users.GET("/:userId", handler.GetUser)
	}
}
