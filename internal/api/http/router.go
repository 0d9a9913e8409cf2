package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/careerpulse/internal/api/http/handlers"
	"github.com/spec-kit/careerpulse/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Token resolution and data access compose
// only here: the auth middleware resolves the identity, and the job routes
// pass it to the owner-scoped service.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	jobs := api.Group("/jobs", cfg.AuthMiddleware.Handle)
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/stats", cfg.Jobs.Stats)
	jobs.Post("/", cfg.Jobs.Save)
	jobs.Delete("/:id", cfg.Jobs.Delete)
}
