package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Joesmod/rainmaker-dashboard/internal/errors"
	"github.com/Joesmod/rainmaker-dashboard/internal/version"
)

func (s *Server) handleDashboard(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	state, err := s.store.LoadDashboard(ctx)
	if err != nil {
		return apperrors.InternalError("failed to load dashboard state", err)
	}
	return c.JSON(200, state)
}

func (s *Server) handlePosts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	state, err := s.store.LoadPosts(ctx)
	if err != nil {
		return apperrors.InternalError("failed to load posts state", err)
	}
	return c.JSON(200, state)
}

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := time.Since(s.startTime).Seconds()
	return c.JSON(200, map[string]any{
		"status": "ok",
		"uptime": uptime,
	})
}

// handleReadiness exercises the configured store. File stores always pass;
// a Redis-backed store fails here when the backend is unreachable.
func (s *Server) handleReadiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := s.store.LoadDashboard(ctx); err != nil {
		return c.JSON(503, map[string]any{
			"status":       "unhealthy",
			"failed_check": "store",
			"error":        err.Error(),
		})
	}
	return c.JSON(200, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(c echo.Context) error {
	return c.JSON(200, version.Get())
}
