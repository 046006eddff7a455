package controllers

import (
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/participants"
	"Backend-Gatherly/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateParticipant godoc
// @Summary Create a participant (admin)
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body models.Participant true "Participant"
// @Success 201 {object} models.Participant
// @Failure 400 {object} models.ErrorResponse
// @Router /participants [post]
func CreateParticipant(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var p models.Participant
	if err := c.BodyParser(&p); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	created, err := participants.CreateParticipant(tenantID, &p)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetParticipants godoc
// @Summary List participants (admin)
// @Tags participants
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param search query string false "Search by name or code"
// @Success 200 {object} models.PaginatedResponse
// @Router /participants [get]
func GetParticipants(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := participants.GetParticipants(tenantID, params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}

// GetParticipantByID godoc
// @Summary Get one participant (admin)
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Failure 404 {object} models.ErrorResponse
// @Router /participants/{id} [get]
func GetParticipantByID(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	p, err := participants.GetParticipantByID(tenantID, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, err.Error())
	}
	return c.JSON(p)
}

// UpdateParticipant godoc
// @Summary Update participant info (admin)
// @Tags participants
// @Accept json
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Router /participants/{id} [put]
func UpdateParticipant(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	p, err := participants.UpdateParticipant(tenantID, c.Params("id"), updates)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(p)
}

// ResetDeviceBinding godoc
// @Summary Clear a participant's device binding (admin)
// @Description ครั้งถัดไปที่เช็คชื่อ อุปกรณ์นั้นจะถูกผูกใหม่
// @Tags participants
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Router /participants/{id}/device-reset [post]
func ResetDeviceBinding(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	if err := participants.ResetDeviceBinding(tenantID, c.Params("id")); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"message": "ล้าง device binding แล้ว"})
}
