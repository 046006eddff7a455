package controllers

import (
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/leaves"
	"Backend-Gatherly/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateLeave godoc
// @Summary Submit a leave request
// @Tags leaves
// @Accept json
// @Produce json
// @Param leave body models.LeaveRequest true "Leave request"
// @Success 201 {object} models.LeaveRequest
// @Failure 400 {object} models.ErrorResponse
// @Router /leaves [post]
func CreateLeave(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	participantID, _ := c.Locals("refId").(string)

	var leave models.LeaveRequest
	if err := c.BodyParser(&leave); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	created, err := leaves.CreateLeave(tenantID, participantID, &leave)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyLeaves godoc
// @Summary Own leave requests
// @Tags leaves
// @Produce json
// @Success 200 {object} models.PaginatedResponse
// @Router /leaves/me [get]
func GetMyLeaves(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)
	participantID, _ := c.Locals("refId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := leaves.GetLeaves(tenantID, participantID, c.Query("status"), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}

// GetLeaves godoc
// @Summary List leave requests (admin)
// @Tags leaves
// @Produce json
// @Param participantId query string false "Filter by participant"
// @Param status query string false "Filter by status"
// @Success 200 {object} models.PaginatedResponse
// @Router /leaves [get]
func GetLeaves(c *fiber.Ctx) error {
	tenantID, _ := c.Locals("tenantId").(string)

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}

	result, err := leaves.GetLeaves(tenantID, c.Query("participantId"), c.Query("status"), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(result)
}

// ApproveLeave godoc
// @Summary Approve a pending leave request (admin)
// @Tags leaves
// @Param id path string true "Leave ID"
// @Success 200 {object} models.LeaveRequest
// @Router /leaves/{id}/approve [put]
func ApproveLeave(c *fiber.Ctx) error {
	return decideLeave(c, true)
}

// RejectLeave godoc
// @Summary Reject a pending leave request (admin)
// @Tags leaves
// @Param id path string true "Leave ID"
// @Success 200 {object} models.LeaveRequest
// @Router /leaves/{id}/reject [put]
func RejectLeave(c *fiber.Ctx) error {
	return decideLeave(c, false)
}

func decideLeave(c *fiber.Ctx, approve bool) error {
	tenantID, _ := c.Locals("tenantId").(string)
	approverID, _ := c.Locals("userId").(string)

	leave, err := leaves.Decide(tenantID, c.Params("id"), approverID, approve)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(leave)
}
