package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/version", s.handleVersion)

	// Root - redirect to the dashboard document
	s.echo.GET("/", func(c echo.Context) error {
		return c.Redirect(302, "/api/dashboard")
	})

	// State documents (read-only)
	s.echo.GET("/api/dashboard", s.handleDashboard)
	s.echo.GET("/api/posts", s.handlePosts)
}
