package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	authRoutes(api)
	attendanceRoutes(api)
	gatheringRoutes(api)
	leaveRoutes(api)
	participantRoutes(api)
	tenantRoutes(api)
	reportRoutes(api)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
