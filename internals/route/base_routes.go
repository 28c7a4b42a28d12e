package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// BaseRoutes expõe a raiz e um health check detalhado (com ping no banco).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "taskverse-backend",
			"status":  "ok",
		})
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}

		status := fiber.StatusOK
		if dbStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"database": dbStatus,
		})
	})
}
