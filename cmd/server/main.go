package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flowboard/flowboard-api/internal/config"
	"github.com/flowboard/flowboard-api/internal/logger"
	"github.com/flowboard/flowboard-api/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
	})
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	srv, err := server.Init(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize server", zap.Error(err))
	}

	if err := srv.Run(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
