// error_utils.go
package utils

import (
	"errors"

	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/attendances"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleCheckinError map error จาก pipeline เช็คชื่อเป็น response พร้อม code
// error ที่ไม่ใช่ CheckinError ถือเป็น server error (ห้ามหลุดรายละเอียดไปหา client)
func HandleCheckinError(c *fiber.Ctx, err error) error {
	var ce *attendances.CheckinError
	if errors.As(err, &ce) {
		return c.Status(ce.HTTPStatus()).JSON(models.ErrorResponse{
			Status:  ce.HTTPStatus(),
			Code:    string(ce.Code),
			Message: ce.Message,
			Details: ce.Details,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "เกิดข้อผิดพลาดภายในระบบ",
	})
}
