package leaves

import (
	"testing"

	"Backend-Gatherly/src/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCoversDate(t *testing.T) {
	t.Run("ExplicitDatesMatch", func(t *testing.T) {
		leave := &models.LeaveRequest{Dates: []string{"2025-06-16", "2025-06-18"}}

		assert.True(t, CoversDate(leave, "2025-06-16"))
		assert.True(t, CoversDate(leave, "2025-06-18"))
		assert.False(t, CoversDate(leave, "2025-06-17"))
	})

	t.Run("ExplicitDatesWinOverRange", func(t *testing.T) {
		leave := &models.LeaveRequest{
			Dates:     []string{"2025-06-16"},
			StartDate: strPtr("2025-06-01"),
			EndDate:   strPtr("2025-06-30"),
		}

		// ถ้ามี dates ชัดเจน range จะไม่ถูกใช้
		assert.False(t, CoversDate(leave, "2025-06-20"))
	})

	t.Run("RangeFallback", func(t *testing.T) {
		leave := &models.LeaveRequest{
			StartDate: strPtr("2025-06-10"),
			EndDate:   strPtr("2025-06-20"),
		}

		assert.True(t, CoversDate(leave, "2025-06-10"), "วันแรกต้องนับ")
		assert.True(t, CoversDate(leave, "2025-06-15"))
		assert.True(t, CoversDate(leave, "2025-06-20"), "วันสุดท้ายต้องนับ")
		assert.False(t, CoversDate(leave, "2025-06-09"))
		assert.False(t, CoversDate(leave, "2025-06-21"))
	})

	t.Run("RangeComparesAcrossMonths", func(t *testing.T) {
		leave := &models.LeaveRequest{
			StartDate: strPtr("2025-06-28"),
			EndDate:   strPtr("2025-07-02"),
		}

		assert.True(t, CoversDate(leave, "2025-07-01"))
		assert.False(t, CoversDate(leave, "2025-07-03"))
	})

	t.Run("EmptyLeaveCoversNothing", func(t *testing.T) {
		assert.False(t, CoversDate(&models.LeaveRequest{}, "2025-06-16"))
	})
}
