package main

import (
	"time"

	"go-sapmock/internal/app"
	"go-sapmock/internal/bootstrap"
	"go-sapmock/internal/config"
	"go-sapmock/internal/middleware"
	"go-sapmock/internal/shared/apperror"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.New(".env")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))
	router.Use(middleware.RequestID())

	if err := app.BuildApp(router, cfg, logger); err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}

	auditLogger := bootstrap.NewStdoutAuditLogger()

	bootstrap.StartHTTPServer(router, bootstrap.ServerConfig{
		Port:          cfg.HTTP.Port,
		ReadTimeout:   time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:  time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
		IdleTimeout:   time.Duration(cfg.HTTP.IdleTimeoutSec) * time.Second,
		ShutdownGrace: time.Duration(cfg.HTTP.ShutdownGraceSec) * time.Second,
	}, auditLogger)
}
