package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/softnews/softnews/internal/cache"
	"github.com/softnews/softnews/internal/config"
	"github.com/softnews/softnews/internal/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, store cache.Store, cfg *config.Config) {
	handlers := NewHandlers(cfg, store)

	// The frontend is served from a different origin
	app.Use(cors.New())

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	{
		api.Get("/news", handlers.GetNews)
		api.Get("/article", handlers.GetArticle)
		api.Get("/youtube", handlers.GetVideos)
		api.Post("/ai", handlers.ChatCompletion)
	}

	// Admin endpoints
	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	{
		admin.Post("/news/refresh", handlers.RefreshNews)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
