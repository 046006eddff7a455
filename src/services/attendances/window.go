package attendances

import (
	"fmt"
	"time"

	"Backend-Gatherly/src/models"
)

// EarlyScanWindow เปิดให้สแกนก่อนเวลาเริ่มได้ 2 ชั่วโมง (ค่าคงที่ของระบบ)
const EarlyScanWindow = 2 * time.Hour

// WindowState ผลการคำนวณช่วงเวลาเช็คชื่อของวันนี้
type WindowState int

const (
	WindowNotToday WindowState = iota // วันนี้ไม่ใช่รอบของ gathering นี้
	WindowTooEarly                    // ยังไม่ถึงช่วงเปิดสแกน
	WindowOpen                        // เช็คชื่อได้ (ตรงเวลา หรือสาย)
	WindowClosedStrict                // เลย grace period และ tenant เปิด strict mode
)

// WindowResult ผลของ Time Window Calculator
type WindowResult struct {
	State          WindowState
	OccurrenceDate string // YYYY-MM-DD ตามเวลา tenant
	Start          time.Time
	End            time.Time
	ScanOpen       time.Time // Start - EarlyScanWindow
	GraceEnd       time.Time // Start + grace ของ tenant

	Late        bool
	MinutesLate int // floor เสมอ ไม่ปัดขึ้น
	SecondsLate int

	// เฉพาะ WindowTooEarly
	HoursRemaining   int
	MinutesRemaining int
}

// TenantZone โซนเวลา civil แบบ offset คงที่ของ tenant
func TenantZone(tenant *models.Tenant) *time.Location {
	offset := models.DefaultUTCOffsetMinutes
	if tenant != nil && tenant.UTCOffsetMinutes != 0 {
		offset = tenant.UTCOffsetMinutes
	}
	sign := "+"
	abs := offset
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, abs/60, abs%60)
	return time.FixedZone(name, offset*60)
}

// ResolveWindow คำนวณว่า "ตอนนี้" อยู่ตรงไหนของ occurrence วันนี้
// now จะถูกแปลงเป็นเวลา tenant ก่อนคำนวณเสมอ
func ResolveWindow(g *models.Gathering, tenant *models.Tenant, now time.Time) (*WindowResult, error) {
	loc := TenantZone(tenant)
	now = now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	ok, err := occursOn(g, today, loc)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &WindowResult{State: WindowNotToday}, nil
	}

	start, err := atTimeOfDay(today, g.StartTime)
	if err != nil {
		return nil, fmt.Errorf("เวลาเริ่มของกิจกรรมไม่ถูกต้อง: %v", err)
	}
	end, err := atTimeOfDay(today, g.EndTime)
	if err != nil {
		return nil, fmt.Errorf("เวลาสิ้นสุดของกิจกรรมไม่ถูกต้อง: %v", err)
	}

	grace := models.DefaultLateGraceMinutes
	if tenant != nil {
		grace = tenant.GraceMinutes()
	}

	result := &WindowResult{
		OccurrenceDate: today.Format("2006-01-02"),
		Start:          start,
		End:            end,
		ScanOpen:       start.Add(-EarlyScanWindow),
		GraceEnd:       start.Add(time.Duration(grace) * time.Minute),
	}

	if now.Before(result.ScanOpen) {
		remaining := result.ScanOpen.Sub(now)
		result.State = WindowTooEarly
		result.HoursRemaining = int(remaining.Hours())
		result.MinutesRemaining = int(remaining.Minutes()) % 60
		return result, nil
	}

	if now.After(start) {
		lateSeconds := int(now.Sub(start).Seconds())
		result.Late = true
		result.MinutesLate = lateSeconds / 60
		result.SecondsLate = lateSeconds % 60
	}

	if now.After(result.GraceEnd) && tenant != nil && tenant.StrictMode {
		result.State = WindowClosedStrict
		return result, nil
	}

	result.State = WindowOpen
	return result, nil
}

// occursOn วันนี้เป็นรอบของ gathering นี้หรือไม่ ตาม recurrence
func occursOn(g *models.Gathering, day time.Time, loc *time.Location) (bool, error) {
	startDate, err := time.ParseInLocation("2006-01-02", g.StartDate, loc)
	if err != nil {
		return false, fmt.Errorf("วันเริ่มของกิจกรรมไม่ถูกต้อง: %v", err)
	}

	var endDate *time.Time
	if g.EndDate != nil && *g.EndDate != "" {
		e, err := time.ParseInLocation("2006-01-02", *g.EndDate, loc)
		if err != nil {
			return false, fmt.Errorf("วันสิ้นสุดของกิจกรรมไม่ถูกต้อง: %v", err)
		}
		endDate = &e
	}

	inRange := !day.Before(startDate) && (endDate == nil || !day.After(*endDate))

	switch g.RecurrenceKind {
	case models.RecurrenceOneTime:
		return day.Equal(startDate), nil
	case models.RecurrenceDaily:
		return inRange, nil
	case models.RecurrenceWeekly:
		if !inRange {
			return false, nil
		}
		for _, wd := range g.WeeklyDays {
			if int(day.Weekday()) == wd {
				return true, nil
			}
		}
		return false, nil
	case models.RecurrenceMonthly:
		// ตาม behavior เดิม: นับทุกวันในช่วง ไม่ล็อกวันที่ของเดือน
		return inRange, nil
	}
	return false, fmt.Errorf("recurrence ไม่รู้จัก: %s", g.RecurrenceKind)
}

// atTimeOfDay รวมวัน (เที่ยงคืน) กับเวลา HH:MM
func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", hhmm, day.Location())
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
