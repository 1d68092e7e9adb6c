package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SamDTech/realtor-api/internal/api/http/handlers"
	"github.com/SamDTech/realtor-api/internal/auth"
	"github.com/SamDTech/realtor-api/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Homes     *handlers.HomesHandler
	Extractor *auth.IdentityExtractor
	Guard     *auth.Guard
}

// RegisterRoutes wires HTTP routes. The identity extractor runs on every
// request; each restricted route declares its allowed role set on the guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Extractor.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup/:userType", cfg.Auth.Signup)
	authGroup.Post("/signin", cfg.Auth.Signin)
	authGroup.Post("/key", cfg.Guard.RequireRole(domain.UserRoleAdmin), cfg.Auth.GenerateProductKey)
	authGroup.Get("/me", cfg.Guard.RequireRole(), cfg.Auth.Me)

	homeGroup := app.Group("/home")
	homeGroup.Get("/", cfg.Homes.List)
	homeGroup.Get("/:id", cfg.Homes.Get)
	homeGroup.Post("/", cfg.Guard.RequireRole(domain.UserRoleRealtor, domain.UserRoleAdmin), cfg.Homes.Create)
	homeGroup.Put("/:id", cfg.Guard.RequireRole(domain.UserRoleRealtor, domain.UserRoleAdmin), cfg.Homes.Update)
	homeGroup.Delete("/:id", cfg.Guard.RequireRole(domain.UserRoleRealtor, domain.UserRoleAdmin), cfg.Homes.Delete)
	homeGroup.Post("/:id/inquire", cfg.Guard.RequireRole(domain.UserRoleBuyer), cfg.Homes.Inquire)
	homeGroup.Get("/:id/messages", cfg.Guard.RequireRole(domain.UserRoleRealtor), cfg.Homes.ListInquiries)
}
