package participants

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

// CreateParticipant เพิ่มสมาชิกใหม่ใน tenant
func CreateParticipant(tenantID string, p *models.Participant) (*models.Participant, error) {
	ctx := context.TODO()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}
	if p.Name == "" || p.Code == "" {
		return nil, fmt.Errorf("ต้องระบุชื่อและรหัสสมาชิก")
	}
	if p.Role == "" {
		p.Role = models.RoleMember
	}

	// code ห้ามซ้ำภายใน tenant
	count, err := DB.ParticipantCollection.CountDocuments(ctx, bson.M{"tenantId": tID, "code": p.Code})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("รหัสสมาชิก %s มีอยู่แล้ว", p.Code)
	}

	p.ID = primitive.NilObjectID
	p.TenantID = tID
	p.DeviceSignature = ""
	p.ClientSignature = ""
	p.Active = true

	res, err := DB.ParticipantCollection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

// GetParticipants ดึงสมาชิกของ tenant แบบแบ่งหน้า
func GetParticipants(tenantID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx := context.TODO()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}
	params.Normalize()

	filter := bson.M{"tenantId": tID}
	if params.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": params.Search, "$options": "i"}},
			bson.M{"code": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.ParticipantCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.ParticipantCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Participant{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(list, total, params), nil
}

// GetParticipantByID ดึงสมาชิกตัวเดียว
func GetParticipantByID(tenantID, participantID string) (*models.Participant, error) {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	pID, err2 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	var p models.Participant
	err := DB.ParticipantCollection.FindOne(context.TODO(), bson.M{"_id": pID, "tenantId": tID}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบผู้ใช้ในองค์กรนี้")
		}
		return nil, err
	}
	return &p, nil
}

// UpdateParticipant แก้ข้อมูลทั่วไป (ไม่แตะ device binding)
func UpdateParticipant(tenantID, participantID string, updates bson.M) (*models.Participant, error) {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	pID, err2 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	allowed := map[string]bool{"name": true, "email": true, "role": true, "active": true}
	set := bson.M{}
	for k, v := range updates {
		if allowed[k] {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("ไม่มี field ที่แก้ไขได้")
	}

	var p models.Participant
	err := DB.ParticipantCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": pID, "tenantId": tID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบผู้ใช้ในองค์กรนี้")
		}
		return nil, err
	}
	return &p, nil
}

// ResetDeviceBinding ล้าง device/client signature ให้ผูกใหม่ได้ในเช็คชื่อครั้งถัดไป
// แตะเฉพาะสอง field นี้เท่านั้น
func ResetDeviceBinding(tenantID, participantID string) error {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	pID, err2 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	res, err := DB.ParticipantCollection.UpdateOne(context.TODO(),
		bson.M{"_id": pID, "tenantId": tID},
		bson.M{"$unset": bson.M{"deviceSignature": "", "clientSignature": ""}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("ไม่พบผู้ใช้ในองค์กรนี้")
	}
	return nil
}
