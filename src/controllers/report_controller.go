package controllers

import (
	"Backend-Gatherly/src/services/reports"
	"Backend-Gatherly/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetGatheringSummary godoc
// @Summary Attendance summary of a gathering for one day (admin)
// @Tags reports
// @Produce json
// @Param id path string true "Gathering ID"
// @Param date query string true "Occurrence date (YYYY-MM-DD)"
// @Success 200 {object} reports.GatheringSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/gatherings/{id}/summary [get]
func GetGatheringSummary(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	date := c.Query("date")
	if date == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุ date")
	}

	summary, err := reports.GetGatheringSummary(tenantID, c.Params("id"), date)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(summary)
}

// GetDailySummaries godoc
// @Summary Attendance summaries of every gathering with records on a day (admin)
// @Tags reports
// @Produce json
// @Param date query string true "Occurrence date (YYYY-MM-DD)"
// @Success 200 {array} reports.GatheringSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /reports/daily [get]
func GetDailySummaries(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	date := c.Query("date")
	if date == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "ต้องระบุ date")
	}

	summaries, err := reports.GetDailySummaries(tenantID, date)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(summaries)
}
