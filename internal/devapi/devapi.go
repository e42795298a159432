// Package devapi runs a local stand-in for the platform REST API.
package devapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"drepalife-app/internal/config"
	"drepalife-app/internal/models"
	"drepalife-app/internal/routes"
)

// Server is the development API with its database.
type Server struct {
	DB     *gorm.DB
	Router *gin.Engine
	cfg    config.DevAPIConfig
	logger *zap.Logger
}

// New migrates the database behind dialector and builds the router.
func New(cfg config.DevAPIConfig, dialector gorm.Dialector, logger *zap.Logger) (*Server, error) {
	db, err := models.InitDB(dialector)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return &Server{
		DB:     db,
		Router: routes.NewRouter(db, &cfg),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Handler exposes the router, for httptest.
func (s *Server) Handler() http.Handler {
	return s.Router
}

// Run serves on the configured port until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("development API listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("development API shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Close releases the database.
func (s *Server) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
