package controllers

import (
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/gatherings"
	"Backend-Gatherly/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateGathering godoc
// @Summary Create a gathering
// @Tags gatherings
// @Accept json
// @Produce json
// @Param gathering body models.Gathering true "Gathering"
// @Success 201 {object} models.Gathering
// @Failure 400 {object} models.ErrorResponse
// @Router /gatherings [post]
func CreateGathering(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var g models.Gathering
	if err := c.BodyParser(&g); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	created, err := gatherings.CreateGathering(tenantID, &g)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetGatherings godoc
// @Summary List gatherings
// @Tags gatherings
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Search by name"
// @Success 200 {object} models.PaginatedResponse
// @Router /gatherings [get]
func GetGatherings(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := gatherings.GetGatherings(tenantID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}

// GetGatheringByID godoc
// @Summary Get one gathering
// @Tags gatherings
// @Produce json
// @Param id path string true "Gathering ID"
// @Success 200 {object} models.Gathering
// @Failure 404 {object} models.ErrorResponse
// @Router /gatherings/{id} [get]
func GetGatheringByID(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	g, err := gatherings.GetGatheringByID(tenantID, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(g)
}

// UpdateGathering godoc
// @Summary Update gathering fields (admin)
// @Tags gatherings
// @Accept json
// @Produce json
// @Param id path string true "Gathering ID"
// @Success 200 {object} models.Gathering
// @Router /gatherings/{id} [put]
func UpdateGathering(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	g, err := gatherings.UpdateGathering(tenantID, c.Params("id"), updates)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(g)
}

// CancelGathering godoc
// @Summary Cancel a gathering (admin)
// @Tags gatherings
// @Param id path string true "Gathering ID"
// @Success 200 {object} map[string]interface{}
// @Router /gatherings/{id}/cancel [put]
func CancelGathering(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	if err := gatherings.CancelGathering(tenantID, c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "ยกเลิกกิจกรรมแล้ว"})
}

// AddRosterEntry godoc
// @Summary Assign a participant to a gathering (admin)
// @Tags gatherings
// @Accept json
// @Param id path string true "Gathering ID"
// @Success 201 {object} map[string]interface{}
// @Router /gatherings/{id}/roster [post]
func AddRosterEntry(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var body struct {
		ParticipantID string `json:"participantId" validate:"required"`
		Mode          string `json:"mode"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := gatherings.AddRosterEntry(tenantID, c.Params("id"), body.ParticipantID, body.Mode); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "เพิ่มผู้เข้าร่วมแล้ว"})
}

// UpdateRosterEntryMode godoc
// @Summary Change a roster entry's physical/remote mode (admin)
// @Tags gatherings
// @Accept json
// @Param id path string true "Gathering ID"
// @Param participantId path string true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Router /gatherings/{id}/roster/{participantId} [put]
func UpdateRosterEntryMode(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var body struct {
		Mode string `json:"mode" validate:"required,oneof=physical remote"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := gatherings.UpdateRosterEntryMode(tenantID, c.Params("id"), c.Params("participantId"), body.Mode); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "อัปเดต mode แล้ว"})
}
