package tenants

import (
	"context"
	"fmt"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTenant ดึงข้อมูล tenant พร้อม settings
func GetTenant(tenantID string) (*models.Tenant, error) {
	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}

	var tenant models.Tenant
	err = DB.TenantCollection.FindOne(context.TODO(), bson.M{"_id": tID}).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบองค์กร")
		}
		return nil, err
	}
	return &tenant, nil
}

// SettingsUpdate ค่าที่แก้ได้ผ่าน API settings
type SettingsUpdate struct {
	LateGraceMinutes *int  `json:"lateGraceMinutes" validate:"omitempty,min=1,max=720"`
	StrictMode       *bool `json:"strictMode"`
	UTCOffsetMinutes *int  `json:"utcOffsetMinutes" validate:"omitempty,min=-720,max=840"`
}

// UpdateSettings แก้ settings ของ tenant (grace period / strict mode / โซนเวลา)
func UpdateSettings(tenantID string, upd *SettingsUpdate) (*models.Tenant, error) {
	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}

	set := bson.M{}
	if upd.LateGraceMinutes != nil {
		set["lateGraceMinutes"] = *upd.LateGraceMinutes
	}
	if upd.StrictMode != nil {
		set["strictMode"] = *upd.StrictMode
	}
	if upd.UTCOffsetMinutes != nil {
		set["utcOffsetMinutes"] = *upd.UTCOffsetMinutes
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("ไม่มี setting ที่จะแก้")
	}

	var tenant models.Tenant
	err = DB.TenantCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": tID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบองค์กร")
		}
		return nil, err
	}
	return &tenant, nil
}

// GetActiveTenants รายชื่อ tenant ที่ active ทั้งหมด (ใช้โดย reconciler)
func GetActiveTenants(ctx context.Context) ([]models.Tenant, error) {
	cursor, err := DB.TenantCollection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Tenant{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
