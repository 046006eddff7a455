package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// leaveRoutes กำหนดเส้นทางสำหรับ Leave API
func leaveRoutes(router fiber.Router) {
	leave := router.Group("/leaves")
	leave.Use(middleware.AuthJWT)

	leave.Post("/", controllers.CreateLeave)
	leave.Get("/me", controllers.GetMyLeaves)

	// --- Admin ---
	leave.Get("/", middleware.RequireAdmin, controllers.GetLeaves)
	leave.Put("/:id/approve", middleware.RequireAdmin, controllers.ApproveLeave)
	leave.Put("/:id/reject", middleware.RequireAdmin, controllers.RejectLeave)
}
