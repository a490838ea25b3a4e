package app

import (
	"context"

	"go-sapmock/internal/config"
	"go-sapmock/internal/employee"
	"go-sapmock/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires every module onto the router and seeds the employee store
// so the service answers queries from the first request.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	catalog := employee.NewCatalog()
	store := employee.NewMemoryStore()
	generator := employee.NewGenerator(catalog)

	employeeService := employee.NewService(store, catalog, generator, logger)
	employeeHandler := employee.NewHandler(employeeService, cfg.OData.MetadataDomain, logger)
	employee.RegisterRoutes(router, employeeHandler, logger)

	userService := user.NewService(logger)
	userHandler := user.NewHandler(userService, logger)
	user.RegisterRoutes(router, userHandler, logger)

	ctx := context.Background()
	if employeeService.Count(ctx) < cfg.Seed.Count {
		if err := employeeService.Generate(ctx, cfg.Seed.Count); err != nil {
			return err
		}
		logger.Info("seeded employee store", zap.Int("count", cfg.Seed.Count))
	}

	return nil
}
