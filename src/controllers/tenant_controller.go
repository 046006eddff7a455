package controllers

import (
	"Backend-Gatherly/src/services/tenants"
	"Backend-Gatherly/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTenantSettings godoc
// @Summary Current tenant settings (admin)
// @Tags tenants
// @Produce json
// @Success 200 {object} models.Tenant
// @Router /tenants/settings [get]
func GetTenantSettings(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	tenant, err := tenants.GetTenant(tenantID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(tenant)
}

// UpdateTenantSettings godoc
// @Summary Update tenant settings (admin)
// @Description grace period / strict mode / UTC offset
// @Tags tenants
// @Accept json
// @Produce json
// @Param settings body tenants.SettingsUpdate true "Settings"
// @Success 200 {object} models.Tenant
// @Failure 400 {object} models.ErrorResponse
// @Router /tenants/settings [put]
func UpdateTenantSettings(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var upd tenants.SettingsUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&upd); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	tenant, err := tenants.UpdateSettings(tenantID, &upd)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(tenant)
}
