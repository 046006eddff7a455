package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AutoAbsentDeviceMarker ค่า deviceSignature สำรองสำหรับ record ที่ระบบสร้างให้คนขาด
const AutoAbsentDeviceMarker = "system/auto-absent"

// ForcedDeviceMarker ค่า deviceSignature สำหรับ record ที่ admin บันทึกแทน
const ForcedDeviceMarker = "system/forced-entry"

// AttendanceRecord บันทึกการเช็คชื่อหนึ่งครั้ง (เก็บเวลาเป็น UTC)
type AttendanceRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID      primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	GatheringID   primitive.ObjectID `bson:"gatheringId" json:"gatheringId"`
	ParticipantID primitive.ObjectID `bson:"participantId" json:"participantId"`

	OccurrenceDate string    `bson:"occurrenceDate" json:"occurrenceDate" example:"2025-03-11"` // YYYY-MM-DD ตามเวลา tenant
	CheckInAt      time.Time `bson:"checkInAt" json:"checkInAt"`

	LocationVerified bool      `bson:"locationVerified" json:"locationVerified"`
	Late             bool      `bson:"late" json:"late"`
	MinutesLate      *int      `bson:"minutesLate,omitempty" json:"minutesLate,omitempty" example:"20"`
	Location         *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	DeviceSignature  string    `bson:"deviceSignature" json:"deviceSignature"`

	Forced   bool                `bson:"forced" json:"forced"` // admin บันทึกแทน (ข้ามทุกเงื่อนไขยกเว้น uniqueness)
	ForcedBy *primitive.ObjectID `bson:"forcedBy,omitempty" json:"forcedBy,omitempty"`
}

// CheckinRequest คำขอเช็คชื่อจาก client
type CheckinRequest struct {
	GatheringID     string    `json:"gatheringId" validate:"required"`
	Location        *GeoPoint `json:"location"`
	DeviceSignature string    `json:"deviceSignature" validate:"required"`
	ClientSignature string    `json:"clientSignature" validate:"required"`
}

// TooEarlyDetail รายละเอียดตอนมาก่อนช่วงเปิดสแกน
type TooEarlyDetail struct {
	HoursRemaining      int    `json:"hoursRemaining" example:"0"`
	MinutesRemaining    int    `json:"minutesRemaining" example:"30"`
	SessionStartTime    string `json:"sessionStartTime" example:"09:00"`
	ScanWindowStartTime string `json:"scanWindowStartTime" example:"07:00"`
}
