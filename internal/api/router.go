package api

import (
	"github.com/MagloireKITIO/chatbot-file/internal/api/handlers"
	"github.com/MagloireKITIO/chatbot-file/pkg/config"
	"github.com/MagloireKITIO/chatbot-file/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	chatHandler *handlers.ChatHandler,
	adminHandler *handlers.AdminHandler,
	rateLimitCfg *config.RateLimitConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Chat API, rate-limited per client IP
	chat := app.Group("/chatbot/api", middleware.RateLimit(rateLimitCfg, appLogger))
	chat.Post("/message", chatHandler.Message)
	chat.Get("/settings", chatHandler.Settings)
	chat.Post("/reload-faq", chatHandler.Reload)

	// Backoffice API
	backoffice := app.Group("/backoffice")
	backoffice.Post("/upload-faq", adminHandler.UploadFAQ)
	backoffice.Get("/uploads", adminHandler.ListUploads)
	backoffice.Get("/settings", adminHandler.GetSettings)
	backoffice.Put("/settings", adminHandler.UpdateSettings)

	return app
}
