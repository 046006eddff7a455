package attendances

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckinErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeForbidden, http.StatusForbidden},
		{CodeGeofenceViolation, http.StatusForbidden},
		{CodeDeviceMismatch, http.StatusForbidden},
		{CodeDeviceCloning, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeDuplicateCheckin, http.StatusConflict},
		{CodeNotScheduledToday, http.StatusUnprocessableEntity},
		{CodeTooEarly, http.StatusUnprocessableEntity},
		{CodeWindowClosedStrict, http.StatusUnprocessableEntity},
		{CodeLocationUnconfigured, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := NewCheckinError(tt.code, "x")
			assert.Equal(t, tt.want, err.HTTPStatus())
		})
	}
}

func TestCheckinErrorUnwrapsWithErrorsAs(t *testing.T) {
	inner := NewCheckinError(CodeDuplicateCheckin, "เช็คชื่อซ้ำ")
	wrapped := fmt.Errorf("checkin: %w", inner)

	var ce *CheckinError
	assert.True(t, errors.As(wrapped, &ce))
	assert.Equal(t, CodeDuplicateCheckin, ce.Code)
	assert.Contains(t, ce.Error(), "เช็คชื่อซ้ำ")
}
