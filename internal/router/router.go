package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/placement-go-api/internal/config"
	"github.com/noah-isme/placement-go-api/internal/handler"
	"github.com/noah-isme/placement-go-api/internal/middleware"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	DriveHandler        *handler.DriveHandler
	ApplicationHandler  *handler.ApplicationHandler
	NotificationHandler *handler.NotificationHandler
	CoordinatorHandler  *handler.CoordinatorHandler
	StudentHandler      *handler.StudentHandler
	ResourceHandler     *handler.ResourceHandler
	PortfolioHandler    *handler.PortfolioHandler
	ResumeHandler       *handler.ResumeHandler
	ExportHandler       *handler.ExportHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		// Register/login run before any identity exists, so throttle by IP.
		auth := api.Group("/auth", middleware.RateLimit("auth", 20, time.Minute))
		deps.AuthHandler.RegisterPublic(auth)

		account := api.Group("/auth", jwtMiddleware)
		deps.AuthHandler.RegisterProtected(account)
	}

	if deps.ProfileHandler != nil {
		profile := api.Group("/profile", jwtMiddleware)
		deps.ProfileHandler.Register(profile)
	}

	if deps.DriveHandler != nil {
		drives := api.Group("/drives", jwtMiddleware)
		deps.DriveHandler.Register(drives)
	}

	if deps.ApplicationHandler != nil {
		applications := api.Group("/applications", jwtMiddleware)
		deps.ApplicationHandler.Register(applications)
	}

	if deps.NotificationHandler != nil {
		notifications := api.Group("/notifications", jwtMiddleware)
		deps.NotificationHandler.Register(notifications)
	}

	if deps.CoordinatorHandler != nil {
		coordinators := api.Group("/coordinators", jwtMiddleware, middleware.RequireRole(models.RoleAdmin))
		deps.CoordinatorHandler.Register(coordinators)
	}

	if deps.StudentHandler != nil {
		students := api.Group("/students", jwtMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator))
		deps.StudentHandler.Register(students)
	}

	if deps.ResourceHandler != nil {
		resources := api.Group("/resources", jwtMiddleware)
		deps.ResourceHandler.Register(resources)
	}

	if deps.PortfolioHandler != nil {
		portfolio := api.Group("/portfolio", jwtMiddleware, middleware.RequireRole(models.RoleStudent))
		deps.PortfolioHandler.Register(portfolio)
	}

	if deps.ResumeHandler != nil {
		resume := api.Group("/resume", jwtMiddleware, middleware.RequireRole(models.RoleStudent))
		deps.ResumeHandler.Register(resume)
	}

	if deps.ExportHandler != nil {
		exports := api.Group("/exports", jwtMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator))
		deps.ExportHandler.Register(exports)
	}
}
