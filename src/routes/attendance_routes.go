package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	attendance := router.Group("/attendances")
	attendance.Use(middleware.AuthJWT)

	attendance.Post("/checkin", controllers.Checkin)
	attendance.Get("/me", controllers.GetMyAttendance)

	// --- Admin ---
	attendance.Get("/", middleware.RequireAdmin, controllers.GetAttendances)
	attendance.Post("/force", middleware.RequireAdmin, controllers.ForceAttendance)
}
