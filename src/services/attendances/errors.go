package attendances

import "github.com/gofiber/fiber/v2"

// ErrorCode รหัส error ของ pipeline เช็คชื่อ ให้ client แยกเคสได้
type ErrorCode string

const (
	CodeForbidden            ErrorCode = "FORBIDDEN"
	CodeNotFound             ErrorCode = "NOT_FOUND"
	CodeInvalidInput         ErrorCode = "INVALID_INPUT"
	CodeNotScheduledToday    ErrorCode = "NOT_SCHEDULED_TODAY"
	CodeTooEarly             ErrorCode = "TOO_EARLY"
	CodeWindowClosedStrict   ErrorCode = "WINDOW_CLOSED_STRICT"
	CodeDuplicateCheckin     ErrorCode = "DUPLICATE_CHECKIN"
	CodeGeofenceViolation    ErrorCode = "GEOFENCE_VIOLATION"
	CodeLocationUnconfigured ErrorCode = "LOCATION_UNCONFIGURED"
	CodeDeviceMismatch       ErrorCode = "DEVICE_MISMATCH"
	CodeDeviceCloning        ErrorCode = "DEVICE_CLONING_DETECTED"
)

// CheckinError error ที่ตั้งใจให้หลุดไปถึง client พร้อม code
type CheckinError struct {
	Code    ErrorCode
	Message string
	Details interface{}
}

func (e *CheckinError) Error() string {
	return e.Message
}

// NewCheckinError สร้าง CheckinError
func NewCheckinError(code ErrorCode, message string) *CheckinError {
	return &CheckinError{Code: code, Message: message}
}

// HTTPStatus แปลง code เป็น HTTP status
func (e *CheckinError) HTTPStatus() int {
	switch e.Code {
	case CodeForbidden, CodeGeofenceViolation, CodeDeviceMismatch, CodeDeviceCloning:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeInvalidInput:
		return fiber.StatusBadRequest
	case CodeDuplicateCheckin:
		return fiber.StatusConflict
	case CodeNotScheduledToday, CodeTooEarly, CodeWindowClosedStrict:
		return fiber.StatusUnprocessableEntity
	case CodeLocationUnconfigured:
		return fiber.StatusInternalServerError
	}
	return fiber.StatusBadRequest
}
