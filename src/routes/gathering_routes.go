package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// gatheringRoutes กำหนดเส้นทางสำหรับ Gathering API
func gatheringRoutes(router fiber.Router) {
	gathering := router.Group("/gatherings")
	gathering.Use(middleware.AuthJWT)

	gathering.Get("/", controllers.GetGatherings)
	gathering.Get("/:id", controllers.GetGatheringByID)

	// --- Admin ---
	gathering.Post("/", middleware.RequireAdmin, controllers.CreateGathering)
	gathering.Put("/:id", middleware.RequireAdmin, controllers.UpdateGathering)
	gathering.Put("/:id/cancel", middleware.RequireAdmin, controllers.CancelGathering)
	gathering.Post("/:id/roster", middleware.RequireAdmin, controllers.AddRosterEntry)
	gathering.Put("/:id/roster/:participantId", middleware.RequireAdmin, controllers.UpdateRosterEntryMode)
}
