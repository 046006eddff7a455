package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Participant สมาชิกในองค์กรที่ถูกมอบหมายเข้ากิจกรรม
type Participant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Code     string             `bson:"code" json:"code" example:"EMP-0042"`
	Name     string             `bson:"name" json:"name" example:"Somchai J."`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role" example:"Member"` // Member / Admin / Owner

	// Device binding: ผูกกับอุปกรณ์ครั้งแรกที่เช็คชื่อ แก้ไม่ได้จนกว่า admin จะ reset
	DeviceSignature string `bson:"deviceSignature,omitempty" json:"-"`
	ClientSignature string `bson:"clientSignature,omitempty" json:"-"`

	Active bool `bson:"active" json:"active"`
}

// Role ที่ห้ามเช็คชื่อด้วยตัวเอง
const (
	RoleMember = "Member"
	RoleAdmin  = "Admin"
	RoleOwner  = "Owner"
)

// IsSelfCheckinBarred ตำแหน่งระดับบริหารเช็คชื่อเองไม่ได้
func (p *Participant) IsSelfCheckinBarred() bool {
	return p.Role == RoleAdmin || p.Role == RoleOwner
}
