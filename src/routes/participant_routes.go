package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// participantRoutes กำหนดเส้นทางสำหรับ Participant API (admin ทั้งหมด)
func participantRoutes(router fiber.Router) {
	participant := router.Group("/participants")
	participant.Use(middleware.AuthJWT, middleware.RequireAdmin)

	participant.Post("/", controllers.CreateParticipant)
	participant.Get("/", controllers.GetParticipants)
	participant.Get("/:id", controllers.GetParticipantByID)
	participant.Put("/:id", controllers.UpdateParticipant)
	participant.Post("/:id/device-reset", controllers.ResetDeviceBinding)
}
