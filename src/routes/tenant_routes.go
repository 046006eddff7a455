package routes

import (
	"Backend-Gatherly/src/controllers"
	"Backend-Gatherly/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// tenantRoutes กำหนดเส้นทางสำหรับ Tenant settings API
func tenantRoutes(router fiber.Router) {
	tenant := router.Group("/tenants")
	tenant.Use(middleware.AuthJWT, middleware.RequireAdmin)

	tenant.Get("/settings", controllers.GetTenantSettings)
	tenant.Put("/settings", controllers.UpdateTenantSettings)
}
