package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"spectra-directory/api"
	"spectra-directory/config"
	"spectra-directory/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App is the assembled application.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully within the configured timeout.
func (a *App) Run() error {
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}

	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
	return logger.Sync()
}

// GetEngine returns the gin engine, used by tests.
func (a *App) GetEngine() *gin.Engine {
	return a.router.GetEngine()
}
