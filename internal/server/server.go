package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Joesmod/rainmaker-dashboard/internal/config"
	"github.com/Joesmod/rainmaker-dashboard/internal/dashboard"
	apperrors "github.com/Joesmod/rainmaker-dashboard/internal/errors"
)

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	store     dashboard.Store
	startTime time.Time
}

func NewServer(cfg *config.Config, store dashboard.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apperrors.Middleware())

	srv := &Server{
		echo:      e,
		config:    cfg,
		store:     store,
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
