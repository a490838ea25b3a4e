package employee

import (
	"go-sapmock/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, handler *Handler, logger *zap.Logger) {
	// Destructive full regeneration; kept behind a tight limit.
	r.POST("/sap/mock/generate-employees",
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(1, 2),
		handler.Generate,
	)

	srv := r.Group(servicePath)
	srv.Use(middleware.ContextLogger(logger))
	{
		srv.GET("/Employees", handler.GetAll)
		srv.POST("/Employees", handler.Create)
		srv.GET("/Employees/:employeeId", handler.GetByID)
		srv.GET("/Employees/:employeeId/Roles", handler.GetRoles)
		srv.GET("/Employees/:employeeId/Privileges", handler.GetPrivileges)
		srv.GET("/Employees/:employeeId/CheckAuthorization", handler.CheckAuthorization)
	}

	r.GET("/download/employees", middleware.ContextLogger(logger), handler.DownloadCSV)
}
