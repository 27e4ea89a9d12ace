// Command chessrulesd runs the chess rules engine's HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chessrules.dev/config"
	"chessrules.dev/httpapi"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration:", err)
	}

	logger := newLogger(cfg.Logging)
	defer logger.Sync() //nolint:errcheck

	server := httpapi.NewServer(cfg, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	server.SetupRoutes(r)

	addr := cfg.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("starting chess rules HTTP server", zap.String("addr", addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newLogger builds a zap logger from LoggingConfig, following the teacher's
// zap.NewProduction()-by-default idiom but honoring the configured level,
// format, and output paths.
func newLogger(cfg config.LoggingConfig) *zap.Logger {
	var zapCfg zap.Config
	if cfg.Format == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg.OutputPath != "" {
		zapCfg.OutputPaths = []string{cfg.OutputPath}
	}
	if cfg.ErrorPath != "" {
		zapCfg.ErrorOutputPaths = []string{cfg.ErrorPath}
	}

	if level, err := zap.ParseAtomicLevel(cfg.Level); err == nil {
		zapCfg.Level = level
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	return logger
}
