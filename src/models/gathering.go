package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recurrence ของ Gathering
const (
	RecurrenceOneTime = "onetime"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
)

// Location mode ของ Gathering
const (
	LocationPhysical = "physical"
	LocationRemote   = "remote"
	LocationHybrid   = "hybrid"
)

// สถานะเช็คชื่อใน roster (ต่อ occurrence)
const (
	AttendanceUnset   = ""
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceOnLeave = "on_leave"
)

// DefaultGeofenceRadius รัศมี geofence ตั้งต้น (เมตร)
const DefaultGeofenceRadius = 100.0

// GeoPoint พิกัด
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat" example:"13.7563"`
	Lng float64 `bson:"lng" json:"lng" example:"100.5018"`
}

// RosterEntry ผู้เข้าร่วมหนึ่งคนใน Gathering พร้อมสถานะของ occurrence ปัจจุบัน
type RosterEntry struct {
	ParticipantID    primitive.ObjectID `bson:"participantId" json:"participantId"`
	Mode             string             `bson:"mode" json:"mode" example:"physical"` // physical / remote (มีผลเฉพาะ hybrid)
	AttendanceStatus string             `bson:"attendanceStatus" json:"attendanceStatus" example:"present"`
	LateFlag         bool               `bson:"lateFlag" json:"lateFlag"`
}

// Gathering กิจกรรมนัดหมาย (ครั้งเดียวหรือเกิดซ้ำ) ของ tenant หนึ่ง
type Gathering struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Name     string             `bson:"name" json:"name" example:"Morning Standup"`

	RecurrenceKind string  `bson:"recurrenceKind" json:"recurrenceKind" example:"weekly"`
	StartDate      string  `bson:"startDate" json:"startDate" example:"2025-03-11"` // YYYY-MM-DD ตามเวลา tenant
	EndDate        *string `bson:"endDate,omitempty" json:"endDate,omitempty" example:"2025-06-30"`
	StartTime      string  `bson:"startTime" json:"startTime" example:"09:00"` // HH:MM
	EndTime        string  `bson:"endTime" json:"endTime" example:"12:00"`
	WeeklyDays     []int   `bson:"weeklyDays,omitempty" json:"weeklyDays,omitempty" example:"1,3,5"` // 0=Sunday ... 6=Saturday

	LocationMode string    `bson:"locationMode" json:"locationMode" example:"physical"`
	Location     *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	RadiusMeters float64   `bson:"radiusMeters,omitempty" json:"radiusMeters,omitempty" example:"100"`
	LocationLink string    `bson:"locationLink,omitempty" json:"locationLink,omitempty"` // ประกาศสถานที่ด้วยลิงก์ → ตรวจพิกัดไม่ได้

	Roster []RosterEntry `bson:"roster" json:"roster"`

	Completed          bool    `bson:"completed" json:"completed"` // occurrence ปัจจุบันถูก reconcile แล้ว
	LastReconciledDate *string `bson:"lastReconciledDate,omitempty" json:"lastReconciledDate,omitempty" example:"2025-03-11"`
	Cancelled          bool    `bson:"cancelled" json:"cancelled"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Radius คืนรัศมี geofence (fallback เป็น 100 เมตร)
func (g *Gathering) Radius() float64 {
	if g.RadiusMeters <= 0 {
		return DefaultGeofenceRadius
	}
	return g.RadiusMeters
}

// RosterEntryFor หา roster entry ของ participant คนหนึ่ง
func (g *Gathering) RosterEntryFor(participantID primitive.ObjectID) *RosterEntry {
	for i := range g.Roster {
		if g.Roster[i].ParticipantID == participantID {
			return &g.Roster[i]
		}
	}
	return nil
}

// GeofenceRequired ต้องตรวจ geofence หรือไม่ ตาม mode ของ gathering และของ participant
// physical → ตรวจทุกคน, remote → ไม่ตรวจ, hybrid → ตรวจเฉพาะคนที่ mode = physical
func (g *Gathering) GeofenceRequired(entry *RosterEntry) bool {
	switch g.LocationMode {
	case LocationPhysical:
		return true
	case LocationRemote:
		return false
	case LocationHybrid:
		return entry != nil && entry.Mode == LocationPhysical
	}
	return false
}
