package attendances

import (
	"testing"
	"time"

	"Backend-Gatherly/src/models"

	"github.com/stretchr/testify/assert"
)

func mondayGathering() *models.Gathering {
	end := "2025-12-31"
	return &models.Gathering{
		Name:           "Weekly Standup",
		RecurrenceKind: models.RecurrenceDaily,
		StartDate:      "2025-06-01",
		EndDate:        &end,
		StartTime:      "09:00",
		EndTime:        "12:00",
	}
}

func bangkokTenant(strict bool) *models.Tenant {
	return &models.Tenant{
		Name:             "Demo Org",
		UTCOffsetMinutes: 420,
		LateGraceMinutes: 30,
		StrictMode:       strict,
	}
}

// tenantTime สร้างเวลา "ตามนาฬิกา tenant" ของวันที่ 2025-06-16 (วันจันทร์)
func tenantTime(tenant *models.Tenant, hour, minute, second int) time.Time {
	loc := TenantZone(tenant)
	return time.Date(2025, 6, 16, hour, minute, second, 0, loc)
}

func TestResolveWindowLateness(t *testing.T) {
	g := mondayGathering()

	t.Run("OnTimeAtExactStart", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.False(t, result.Late)
		assert.Equal(t, 0, result.MinutesLate)
		assert.Equal(t, "2025-06-16", result.OccurrenceDate)
	})

	t.Run("ThirtySecondsLateIsStillLate", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 30))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.True(t, result.Late)
		assert.Equal(t, 0, result.MinutesLate, "ต้อง floor ไม่ปัดขึ้น")
		assert.Equal(t, 30, result.SecondsLate)
	})

	t.Run("TwentyMinutesLateWithinGrace", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 20, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.True(t, result.Late)
		assert.Equal(t, 20, result.MinutesLate)
	})

	t.Run("PastGraceNonStrictStaysOpen", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 45, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.True(t, result.Late)
		assert.Equal(t, 45, result.MinutesLate)
	})

	t.Run("PastGraceStrictIsClosed", func(t *testing.T) {
		tenant := bangkokTenant(true)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 45, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowClosedStrict, result.State)
		assert.Equal(t, 45, result.MinutesLate)
	})

	t.Run("ExactGraceEndStrictStillOpen", func(t *testing.T) {
		tenant := bangkokTenant(true)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 30, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
	})
}

func TestResolveWindowTooEarly(t *testing.T) {
	g := mondayGathering()

	t.Run("ThirtyMinutesBeforeScanOpen", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 6, 30, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowTooEarly, result.State)
		assert.Equal(t, 0, result.HoursRemaining)
		assert.Equal(t, 30, result.MinutesRemaining)
	})

	t.Run("ExactScanOpenIsAllowed", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 7, 0, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.False(t, result.Late)
	})

	t.Run("LongWaitReportsHoursAndMinutes", func(t *testing.T) {
		tenant := bangkokTenant(false)
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 5, 15, 0))

		assert.NoError(t, err)
		assert.Equal(t, WindowTooEarly, result.State)
		assert.Equal(t, 1, result.HoursRemaining)
		assert.Equal(t, 45, result.MinutesRemaining)
	})
}

func TestResolveWindowRecurrence(t *testing.T) {
	tenant := bangkokTenant(false)

	t.Run("OneTimeOnlyOnItsDate", func(t *testing.T) {
		g := mondayGathering()
		g.RecurrenceKind = models.RecurrenceOneTime
		g.StartDate = "2025-06-16"
		g.EndDate = nil

		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)

		g.StartDate = "2025-06-17"
		result, err = ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowNotToday, result.State)
	})

	t.Run("DailyOutsideRangeIsNotToday", func(t *testing.T) {
		g := mondayGathering()
		end := "2025-06-10"
		g.EndDate = &end

		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowNotToday, result.State)
	})

	t.Run("WeeklyMatchesConfiguredDays", func(t *testing.T) {
		g := mondayGathering()
		g.RecurrenceKind = models.RecurrenceWeekly
		g.WeeklyDays = []int{1, 3} // จันทร์ พุธ

		// 2025-06-16 เป็นวันจันทร์
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)

		g.WeeklyDays = []int{2, 4}
		result, err = ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowNotToday, result.State)
	})

	t.Run("MonthlyCountsEveryDayInRange", func(t *testing.T) {
		g := mondayGathering()
		g.RecurrenceKind = models.RecurrenceMonthly

		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 20, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.True(t, result.Late)
	})

	t.Run("InvalidStartDateReturnsError", func(t *testing.T) {
		g := mondayGathering()
		g.StartDate = "16/06/2025"

		_, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 0, 0))
		assert.Error(t, err)
	})
}

func TestResolveWindowTenantZone(t *testing.T) {
	g := mondayGathering()

	t.Run("UTCInputConvertsToTenantClock", func(t *testing.T) {
		tenant := bangkokTenant(false)
		// 02:20 UTC = 09:20 ตามเวลา tenant (+07:00)
		now := time.Date(2025, 6, 16, 2, 20, 0, 0, time.UTC)

		result, err := ResolveWindow(g, tenant, now)
		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
		assert.True(t, result.Late)
		assert.Equal(t, 20, result.MinutesLate)
		assert.Equal(t, "2025-06-16", result.OccurrenceDate)
	})

	t.Run("OccurrenceDateFollowsTenantNotUTC", func(t *testing.T) {
		tenant := bangkokTenant(false)
		// 23:30 UTC วันที่ 15 = 06:30 วันที่ 16 ตามเวลา tenant
		now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

		result, err := ResolveWindow(g, tenant, now)
		assert.NoError(t, err)
		assert.Equal(t, WindowTooEarly, result.State)
	})

	t.Run("ZeroOffsetFallsBackToDefault", func(t *testing.T) {
		tenant := &models.Tenant{Name: "Fresh Org"}
		loc := TenantZone(tenant)
		_, offset := time.Date(2025, 6, 16, 0, 0, 0, 0, loc).Zone()
		assert.Equal(t, models.DefaultUTCOffsetMinutes*60, offset)
	})

	t.Run("NegativeOffsetZone", func(t *testing.T) {
		tenant := &models.Tenant{Name: "NY Org", UTCOffsetMinutes: -300}
		loc := TenantZone(tenant)
		_, offset := time.Date(2025, 6, 16, 0, 0, 0, 0, loc).Zone()
		assert.Equal(t, -300*60, offset)
	})

	t.Run("ZeroGraceUsesDefault", func(t *testing.T) {
		tenant := &models.Tenant{UTCOffsetMinutes: 420, StrictMode: true}
		// 09:25 ยังไม่เกิน grace default 30 นาที
		result, err := ResolveWindow(g, tenant, tenantTime(tenant, 9, 25, 0))
		assert.NoError(t, err)
		assert.Equal(t, WindowOpen, result.State)
	})
}
