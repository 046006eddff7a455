package gatherings

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validRecurrences = map[string]bool{
	models.RecurrenceOneTime: true,
	models.RecurrenceDaily:   true,
	models.RecurrenceWeekly:  true,
	models.RecurrenceMonthly: true,
}

var validLocationModes = map[string]bool{
	models.LocationPhysical: true,
	models.LocationRemote:   true,
	models.LocationHybrid:   true,
}

// CreateGathering สร้างกิจกรรมใหม่ของ tenant
func CreateGathering(tenantID string, g *models.Gathering) (*models.Gathering, error) {
	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}

	if !validRecurrences[g.RecurrenceKind] {
		return nil, fmt.Errorf("recurrence ไม่ถูกต้อง: %s", g.RecurrenceKind)
	}
	if !validLocationModes[g.LocationMode] {
		return nil, fmt.Errorf("location mode ไม่ถูกต้อง: %s", g.LocationMode)
	}
	if g.RecurrenceKind == models.RecurrenceWeekly && len(g.WeeklyDays) == 0 {
		return nil, fmt.Errorf("กิจกรรมรายสัปดาห์ต้องระบุวันในสัปดาห์")
	}
	if _, err := time.Parse("2006-01-02", g.StartDate); err != nil {
		return nil, fmt.Errorf("วันเริ่มไม่ถูกต้อง (YYYY-MM-DD)")
	}
	if g.EndDate != nil && *g.EndDate != "" {
		if _, err := time.Parse("2006-01-02", *g.EndDate); err != nil {
			return nil, fmt.Errorf("วันสิ้นสุดไม่ถูกต้อง (YYYY-MM-DD)")
		}
	}
	if _, err := time.Parse("15:04", g.StartTime); err != nil {
		return nil, fmt.Errorf("เวลาเริ่มไม่ถูกต้อง (HH:MM)")
	}
	if _, err := time.Parse("15:04", g.EndTime); err != nil {
		return nil, fmt.Errorf("เวลาสิ้นสุดไม่ถูกต้อง (HH:MM)")
	}
	if g.LocationMode == models.LocationPhysical && g.Location == nil && g.LocationLink == "" {
		return nil, fmt.Errorf("กิจกรรม onsite ต้องมีพิกัดหรือลิงก์สถานที่")
	}

	g.ID = primitive.NilObjectID
	g.TenantID = tID
	g.Completed = false
	g.LastReconciledDate = nil
	g.Cancelled = false
	if g.Roster == nil {
		g.Roster = []models.RosterEntry{}
	}
	for i := range g.Roster {
		g.Roster[i].AttendanceStatus = models.AttendanceUnset
		g.Roster[i].LateFlag = false
		if g.Roster[i].Mode == "" {
			g.Roster[i].Mode = models.LocationPhysical
		}
	}
	g.CreatedAt = time.Now().UTC()
	g.UpdatedAt = g.CreatedAt

	res, err := DB.GatheringCollection.InsertOne(context.TODO(), g)
	if err != nil {
		return nil, err
	}
	g.ID = res.InsertedID.(primitive.ObjectID)
	return g, nil
}

// GetGatherings ดึงกิจกรรมของ tenant แบบแบ่งหน้า ค้นหาจากชื่อได้
func GetGatherings(tenantID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx := context.TODO()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}
	params.Normalize()

	filter := bson.M{"tenantId": tID}
	if params.Search != "" {
		filter["name"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.GatheringCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.GatheringCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := []models.Gathering{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(list, total, params), nil
}

// GetGatheringByID ดึงกิจกรรมตัวเดียว
func GetGatheringByID(tenantID, gatheringID string) (*models.Gathering, error) {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	var g models.Gathering
	err := DB.GatheringCollection.FindOne(context.TODO(), bson.M{"_id": gID, "tenantId": tID}).Decode(&g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบกิจกรรม")
		}
		return nil, err
	}
	return &g, nil
}

// UpdateGathering แก้ไขข้อมูลกิจกรรม (ไม่แตะ roster / completed)
func UpdateGathering(tenantID, gatheringID string, updates bson.M) (*models.Gathering, error) {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	// อนุญาตแก้เฉพาะ field ที่ตั้งใจเปิดให้แก้
	allowed := map[string]bool{
		"name": true, "recurrenceKind": true, "startDate": true, "endDate": true,
		"startTime": true, "endTime": true, "weeklyDays": true,
		"locationMode": true, "location": true, "radiusMeters": true, "locationLink": true,
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range updates {
		if allowed[k] {
			set[k] = v
		}
	}

	var g models.Gathering
	err := DB.GatheringCollection.FindOneAndUpdate(context.TODO(),
		bson.M{"_id": gID, "tenantId": tID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบกิจกรรม")
		}
		return nil, err
	}
	return &g, nil
}

// CancelGathering ยกเลิกกิจกรรม (reconciler จะข้ามกิจกรรมที่ถูกยกเลิก)
func CancelGathering(tenantID, gatheringID string) error {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("รหัสไม่ถูกต้อง")
	}

	res, err := DB.GatheringCollection.UpdateOne(context.TODO(),
		bson.M{"_id": gID, "tenantId": tID},
		bson.M{"$set": bson.M{"cancelled": true, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("ไม่พบกิจกรรม")
	}
	return nil
}

// AddRosterEntry เพิ่มผู้เข้าร่วม (roster เป็น append/edit เท่านั้น ไม่มีการลบ)
func AddRosterEntry(tenantID, gatheringID, participantID, mode string) error {
	ctx := context.TODO()

	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	pID, err3 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("รหัสไม่ถูกต้อง")
	}
	if mode == "" {
		mode = models.LocationPhysical
	}
	if mode != models.LocationPhysical && mode != models.LocationRemote {
		return fmt.Errorf("mode ของผู้เข้าร่วมต้องเป็น physical หรือ remote")
	}

	// participant ต้องเป็นของ tenant เดียวกัน
	count, err := DB.ParticipantCollection.CountDocuments(ctx, bson.M{"_id": pID, "tenantId": tID})
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("ไม่พบผู้ใช้ในองค์กรนี้")
	}

	entry := models.RosterEntry{
		ParticipantID:    pID,
		Mode:             mode,
		AttendanceStatus: models.AttendanceUnset,
	}
	res, err := DB.GatheringCollection.UpdateOne(ctx,
		bson.M{"_id": gID, "tenantId": tID, "roster.participantId": bson.M{"$ne": pID}},
		bson.M{
			"$push": bson.M{"roster": entry},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("ไม่พบกิจกรรม หรือผู้ใช้อยู่ใน roster แล้ว")
	}
	return nil
}

// UpdateRosterEntryMode แก้ mode ของผู้เข้าร่วม (ใช้กับ hybrid)
func UpdateRosterEntryMode(tenantID, gatheringID, participantID, mode string) error {
	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	pID, err3 := primitive.ObjectIDFromHex(participantID)
	if err1 != nil || err2 != nil || err3 != nil {
		return fmt.Errorf("รหัสไม่ถูกต้อง")
	}
	if mode != models.LocationPhysical && mode != models.LocationRemote {
		return fmt.Errorf("mode ของผู้เข้าร่วมต้องเป็น physical หรือ remote")
	}

	res, err := DB.GatheringCollection.UpdateOne(context.TODO(),
		bson.M{"_id": gID, "tenantId": tID, "roster.participantId": pID},
		bson.M{"$set": bson.M{
			"roster.$.mode": mode,
			"updatedAt":     time.Now().UTC(),
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("ไม่พบผู้ใช้ใน roster ของกิจกรรมนี้")
	}
	return nil
}
