package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// สถานะของ LeaveRequest
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveRequest คำขอลา ระบุวันเป็นรายวัน (dates) หรือช่วงวัน (startDate-endDate) แบบเก่า
type LeaveRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID      primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	ParticipantID primitive.ObjectID `bson:"participantId" json:"participantId"`

	Kind   string   `bson:"kind" json:"kind" example:"sick"` // sick / personal / vacation / other
	Dates  []string `bson:"dates,omitempty" json:"dates,omitempty" example:"2025-03-11,2025-03-12"`
	Reason string   `bson:"reason,omitempty" json:"reason,omitempty"`

	// ช่วงวันแบบเก่า (inclusive) ใช้เมื่อไม่มี dates
	StartDate *string `bson:"startDate,omitempty" json:"startDate,omitempty" example:"2025-03-11"`
	EndDate   *string `bson:"endDate,omitempty" json:"endDate,omitempty" example:"2025-03-14"`

	Status     string              `bson:"status" json:"status" example:"approved"`
	ApproverID *primitive.ObjectID `bson:"approverId,omitempty" json:"approverId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
