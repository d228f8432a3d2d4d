package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/admin-gate/internal/api/http/handlers"
	"github.com/spec-kit/admin-gate/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        fiber.Handler
}

// RegisterRoutes wires HTTP routes. NotFound is registered last.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", cfg.Metrics)
	}

	api := app.Group("/api")
	api.Get("/session", cfg.AuthMiddleware.Handle, cfg.Session.Current)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/session", cfg.Session.Current)

	user := api.Group("/user", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())
	user.Get("/session", cfg.Session.Current)

	app.Use(NotFound)
}
