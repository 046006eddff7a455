package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนดเส้นทางสำหรับ Auth API
func authRoutes(router fiber.Router) {
	auth := router.Group("/auth")

	auth.Post("/login", controllers.LoginUser)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
