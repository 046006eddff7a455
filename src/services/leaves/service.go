package leaves

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/leaves/email"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateLeave ยื่นคำขอลา (สถานะเริ่มต้น pending)
func CreateLeave(tenantID, participantID string, leave *models.LeaveRequest) (*models.LeaveRequest, error) {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	pID, err2 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}
	if len(leave.Dates) == 0 && (leave.StartDate == nil || leave.EndDate == nil) {
		return nil, fmt.Errorf("ต้องระบุวันลาเป็นรายวัน หรือช่วงวันเริ่ม-สิ้นสุด")
	}

	leave.TenantID = tID
	leave.ParticipantID = pID
	leave.Status = models.LeavePending
	leave.ApproverID = nil
	leave.CreatedAt = time.Now().UTC()
	leave.UpdatedAt = leave.CreatedAt

	res, err := DB.LeaveCollection.InsertOne(context.TODO(), leave)
	if err != nil {
		return nil, err
	}
	leave.ID = res.InsertedID.(primitive.ObjectID)
	return leave, nil
}

// GetLeaves ดึงคำขอลาของ tenant แบบแบ่งหน้า (กรองด้วย participant / status ได้)
func GetLeaves(tenantID, participantID, status string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx := context.TODO()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}
	params.Normalize()

	filter := bson.M{"tenantId": tID}
	if participantID != "" {
		pID, err := primitive.ObjectIDFromHex(participantID)
		if err != nil {
			return nil, fmt.Errorf("รหัสผู้ใช้ไม่ถูกต้อง")
		}
		filter["participantId"] = pID
	}
	if status != "" {
		filter["status"] = status
	}

	total, err := DB.LeaveCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.LeaveCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	leavesList := []models.LeaveRequest{}
	if err := cursor.All(ctx, &leavesList); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(leavesList, total, params), nil
}

// Decide อนุมัติหรือปฏิเสธคำขอลา (ตัดสินได้เฉพาะคำขอที่ยัง pending)
func Decide(tenantID, leaveID, approverID string, approve bool) (*models.LeaveRequest, error) {
	ctx := context.TODO()

	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	lID, err2 := primitive.ObjectIDFromHex(leaveID)
	aID, err3 := primitive.ObjectIDFromHex(approverID)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	status := models.LeaveApproved
	if !approve {
		status = models.LeaveRejected
	}

	var updated models.LeaveRequest
	err := DB.LeaveCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": lID, "tenantId": tID, "status": models.LeavePending},
		bson.M{"$set": bson.M{
			"status":     status,
			"approverId": aID,
			"updatedAt":  time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบคำขอลาที่ยังรอการอนุมัติ")
		}
		return nil, err
	}

	// แจ้งผลให้ participant ทางอีเมล (ผ่านคิวถ้ามี Redis)
	email.NotifyLeaveDecided(updated.ID.Hex())

	return &updated, nil
}

// CoversDate คำขอลาครอบคลุมวัน (YYYY-MM-DD) นี้หรือไม่
// dates รายวันมาก่อน ถ้าไม่มีค่อย fallback ช่วง startDate-endDate แบบเก่า
func CoversDate(leave *models.LeaveRequest, date string) bool {
	if len(leave.Dates) > 0 {
		for _, d := range leave.Dates {
			if d == date {
				return true
			}
		}
		return false
	}
	if leave.StartDate != nil && leave.EndDate != nil {
		return *leave.StartDate <= date && date <= *leave.EndDate
	}
	return false
}

// FindApprovedLeaveForDate หา leave ที่อนุมัติแล้วและครอบคลุมวันนี้
// ถ้ามีหลายใบ เอาใบที่อัปเดตล่าสุด / ไม่พบคืน nil โดยไม่ error
func FindApprovedLeaveForDate(ctx context.Context, tenantID, participantID primitive.ObjectID, date string) (*models.LeaveRequest, error) {
	filter := bson.M{
		"tenantId":      tenantID,
		"participantId": participantID,
		"status":        models.LeaveApproved,
		"$or": bson.A{
			bson.M{"dates": date},
			bson.M{
				"dates":     bson.M{"$in": bson.A{nil, bson.A{}}},
				"startDate": bson.M{"$lte": date},
				"endDate":   bson.M{"$gte": date},
			},
		},
	}

	var leave models.LeaveRequest
	err := DB.LeaveCollection.FindOne(ctx, filter,
		options.FindOne().SetSort(bson.M{"updatedAt": -1})).Decode(&leave)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}
