package reconcile

import (
	"testing"
	"time"

	"Backend-Gatherly/src/models"

	"github.com/stretchr/testify/assert"
)

func TestDecideFinalStatus(t *testing.T) {
	t.Run("RecordWinsOverLeave", func(t *testing.T) {
		status, late, synthesize := DecideFinalStatus(true, true, true)
		assert.Equal(t, models.AttendancePresent, status)
		assert.True(t, late)
		assert.False(t, synthesize)
	})

	t.Run("OnTimeRecordNotLate", func(t *testing.T) {
		status, late, synthesize := DecideFinalStatus(true, false, false)
		assert.Equal(t, models.AttendancePresent, status)
		assert.False(t, late)
		assert.False(t, synthesize)
	})

	t.Run("ApprovedLeaveWithoutRecord", func(t *testing.T) {
		status, late, synthesize := DecideFinalStatus(false, false, true)
		assert.Equal(t, models.AttendanceOnLeave, status)
		assert.False(t, late)
		assert.False(t, synthesize, "on_leave ไม่สร้าง record")
	})

	t.Run("NothingMeansAbsentWithSyntheticRecord", func(t *testing.T) {
		status, late, synthesize := DecideFinalStatus(false, false, false)
		assert.Equal(t, models.AttendanceAbsent, status)
		assert.False(t, late)
		assert.True(t, synthesize)
	})
}

func TestNewSweeperClock(t *testing.T) {
	s := NewSweeper()
	assert.NotNil(t, s.Now)
	assert.WithinDuration(t, time.Now(), s.Now(), 2*time.Second)
}
