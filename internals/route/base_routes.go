package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startedAt = time.Now()

func BaseRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
