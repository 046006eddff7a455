package controllers

import (
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/attendances"
	"Backend-Gatherly/src/utils"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Checkin godoc
// @Summary Check in to a gathering
// @Description Verify time window, geofence and device binding, then record attendance
// @Tags attendances
// @Accept json
// @Produce json
// @Param request body models.CheckinRequest true "Check-in request"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /attendances/checkin [post]
func Checkin(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	participantID, _ := c.Locals("refId").(string)

	var req models.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	record, msg, err := attendances.Checkin(tenantID, participantID, &req)
	if err != nil {
		if _, ok := err.(*attendances.CheckinError); !ok {
			// storage error — log เต็ม ตอบ generic
			log.Printf("❌ Checkin failed for participant %s: %v", participantID, err)
		}
		return utils.HandleCheckinError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg,
		"record":  record,
	})
}

// ForceAttendance godoc
// @Summary Force-create an attendance record (admin)
// @Description Bypass all checks except the one-record-per-occurrence rule
// @Tags attendances
// @Accept json
// @Produce json
// @Param request body attendances.ForceRequest true "Force request"
// @Success 201 {object} models.AttendanceRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendances/force [post]
func ForceAttendance(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	adminID, _ := c.Locals("userId").(string)

	var req attendances.ForceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	record, err := attendances.ForceRecord(tenantID, adminID, &req)
	if err != nil {
		if _, ok := err.(*attendances.CheckinError); !ok {
			log.Printf("❌ Force attendance failed: %v", err)
		}
		return utils.HandleCheckinError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetAttendances godoc
// @Summary List attendance records (admin)
// @Tags attendances
// @Produce json
// @Param gatheringId query string false "Filter by gathering"
// @Param participantId query string false "Filter by participant"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} models.PaginatedResponse
// @Router /attendances [get]
func GetAttendances(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := attendances.GetAttendances(tenantID, c.Query("gatheringId"), c.Query("participantId"), params)
	if err != nil {
		return utils.HandleCheckinError(c, err)
	}
	return c.JSON(result)
}

// GetMyAttendance godoc
// @Summary Own attendance history
// @Tags attendances
// @Produce json
// @Success 200 {object} models.PaginatedResponse
// @Router /attendances/me [get]
func GetMyAttendance(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	participantID, _ := c.Locals("refId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := attendances.GetMyAttendance(tenantID, participantID, params)
	if err != nil {
		return utils.HandleCheckinError(c, err)
	}
	return c.JSON(result)
}
