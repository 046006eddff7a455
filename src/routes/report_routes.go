package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// reportRoutes กำหนดเส้นทางสำหรับ Summary report API
func reportRoutes(router fiber.Router) {
	report := router.Group("/reports")
	report.Use(middleware.AuthJWT, middleware.RequireAdmin)

	report.Get("/daily", controllers.GetDailySummaries)
	report.Get("/gatherings/:id/summary", controllers.GetGatheringSummary)
}
