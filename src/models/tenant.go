package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tenant องค์กร (หนึ่ง tenant = หนึ่งองค์กร แยกข้อมูลด้วย tenantId ในทุก collection)
type Tenant struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name" example:"Acme Co., Ltd."`
	UTCOffsetMinutes int                `bson:"utcOffsetMinutes" json:"utcOffsetMinutes" example:"420"` // เวลา civil ขององค์กร (นาทีจาก UTC)
	LateGraceMinutes int                `bson:"lateGraceMinutes" json:"lateGraceMinutes" example:"30"`
	StrictMode       bool               `bson:"strictMode" json:"strictMode"` // true = เลย grace period แล้วเช็คชื่อไม่ได้
	Active           bool               `bson:"active" json:"active"`
}

// DefaultLateGraceMinutes ค่าตั้งต้นของ grace period หลังเวลาเริ่ม
const DefaultLateGraceMinutes = 30

// DefaultUTCOffsetMinutes ค่าตั้งต้น UTC+7
const DefaultUTCOffsetMinutes = 420

// GraceMinutes คืนค่า grace period ของ tenant (fallback เป็นค่าตั้งต้น)
func (t *Tenant) GraceMinutes() int {
	if t.LateGraceMinutes <= 0 {
		return DefaultLateGraceMinutes
	}
	return t.LateGraceMinutes
}
