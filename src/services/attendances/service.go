package attendances

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

// Checkin ทั้ง pipeline ของการเช็คชื่อหนึ่งครั้ง
// ลำดับการตรวจเป็น contract: role → มีตัวตน → อยู่ใน roster → ช่วงเวลา →
// เช็คซ้ำ → geofence → device binding → บันทึก
func Checkin(tenantID, participantID string, req *models.CheckinRequest) (*models.AttendanceRecord, string, error) {
	ctx := context.TODO()

	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	pID, err2 := primitive.ObjectIDFromHex(participantID)
	gID, err3 := primitive.ObjectIDFromHex(req.GatheringID)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, "", NewCheckinError(CodeInvalidInput, "รหัสไม่ถูกต้อง")
	}

	// 1) participant ต้องมีอยู่ และ role ต้องเช็คชื่อเองได้
	var participant models.Participant
	err := DB.ParticipantCollection.FindOne(ctx, bson.M{"_id": pID, "tenantId": tID}).Decode(&participant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", NewCheckinError(CodeNotFound, "ไม่พบผู้ใช้ในองค์กรนี้")
		}
		return nil, "", err
	}
	if participant.IsSelfCheckinBarred() {
		return nil, "", NewCheckinError(CodeForbidden, "ตำแหน่งนี้เช็คชื่อด้วยตัวเองไม่ได้")
	}

	// 2) gathering ต้องมีอยู่ และ participant ต้องถูกมอบหมาย
	var gathering models.Gathering
	err = DB.GatheringCollection.FindOne(ctx, bson.M{"_id": gID, "tenantId": tID}).Decode(&gathering)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, "", NewCheckinError(CodeNotFound, "ไม่พบกิจกรรม")
		}
		return nil, "", err
	}
	if gathering.Cancelled {
		return nil, "", NewCheckinError(CodeNotScheduledToday, "กิจกรรมนี้ถูกยกเลิกแล้ว")
	}
	entry := gathering.RosterEntryFor(pID)
	if entry == nil {
		return nil, "", NewCheckinError(CodeForbidden, "คุณไม่ได้ถูกมอบหมายในกิจกรรมนี้")
	}

	tenant := loadTenant(ctx, tID)

	// 3) ช่วงเวลา
	now := time.Now()
	window, err := ResolveWindow(&gathering, tenant, now)
	if err != nil {
		return nil, "", NewCheckinError(CodeInvalidInput, err.Error())
	}
	switch window.State {
	case WindowNotToday:
		return nil, "", NewCheckinError(CodeNotScheduledToday, "วันนี้ไม่มีรอบของกิจกรรมนี้")
	case WindowTooEarly:
		e := NewCheckinError(CodeTooEarly, fmt.Sprintf("ยังไม่ถึงเวลาเปิดสแกน (อีก %d ชม. %d นาที)",
			window.HoursRemaining, window.MinutesRemaining))
		e.Details = models.TooEarlyDetail{
			HoursRemaining:      window.HoursRemaining,
			MinutesRemaining:    window.MinutesRemaining,
			SessionStartTime:    gathering.StartTime,
			ScanWindowStartTime: window.ScanOpen.Format("15:04"),
		}
		return nil, "", e
	case WindowClosedStrict:
		return nil, "", NewCheckinError(CodeWindowClosedStrict,
			fmt.Sprintf("เลยช่วงเวลาเช็คชื่อแล้ว (สาย %d นาที)", window.MinutesLate))
	}

	// 4) กันเช็คซ้ำใน occurrence เดียวกัน
	dupFilter := bson.M{
		"tenantId":       tID,
		"gatheringId":    gID,
		"participantId":  pID,
		"occurrenceDate": window.OccurrenceDate,
	}
	count, err := DB.AttendanceCollection.CountDocuments(ctx, dupFilter)
	if err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", NewCheckinError(CodeDuplicateCheckin, "คุณเช็คชื่อรอบนี้ไปแล้ว")
	}

	// 5) geofence ก่อน device เสมอ (ให้ user แก้เรื่องสถานที่ก่อน)
	locationVerified, err := verifyLocation(&gathering, entry, req.Location)
	if err != nil {
		return nil, "", err
	}

	// 6) device binding
	if err := enforceDeviceBinding(ctx, &participant, req.DeviceSignature, req.ClientSignature); err != nil {
		return nil, "", err
	}

	// 7) บันทึก record + อัปเดต roster (สอง write ต้องสำเร็จทั้งคู่)
	record := &models.AttendanceRecord{
		TenantID:         tID,
		GatheringID:      gID,
		ParticipantID:    pID,
		OccurrenceDate:   window.OccurrenceDate,
		CheckInAt:        now.UTC(),
		LocationVerified: locationVerified,
		Late:             window.Late,
		Location:         req.Location,
		DeviceSignature:  req.DeviceSignature,
		Forced:           false,
	}
	if window.Late {
		minutes := window.MinutesLate
		record.MinutesLate = &minutes
	}

	res, err := DB.AttendanceCollection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// unique index ปิด race ของสอง request พร้อมกัน
			return nil, "", NewCheckinError(CodeDuplicateCheckin, "คุณเช็คชื่อรอบนี้ไปแล้ว")
		}
		return nil, "", err
	}
	record.ID = res.InsertedID.(primitive.ObjectID)

	update := bson.M{"$set": bson.M{
		"roster.$.attendanceStatus": models.AttendancePresent,
		"roster.$.lateFlag":         window.Late,
		"updatedAt":                 time.Now().UTC(),
	}}
	upd, err := DB.GatheringCollection.UpdateOne(ctx,
		bson.M{"_id": gID, "roster.participantId": pID}, update)
	if err != nil {
		return nil, "", fmt.Errorf("บันทึกเช็คชื่อแล้วแต่อัปเดตสถานะใน roster ไม่สำเร็จ: %v", err)
	}
	if upd.MatchedCount == 0 {
		return nil, "", fmt.Errorf("บันทึกเช็คชื่อแล้วแต่ไม่พบ roster entry ที่จะอัปเดต")
	}

	msg := "เช็คชื่อสำเร็จ"
	if window.Late {
		msg = fmt.Sprintf("เช็คชื่อสำเร็จ (สาย %d นาที)", window.MinutesLate)
	}
	return record, msg, nil
}

// verifyLocation resolve ว่าต้องตรวจ geofence ไหม แล้วตรวจ
func verifyLocation(g *models.Gathering, entry *models.RosterEntry, claimed *models.GeoPoint) (bool, error) {
	if !g.GeofenceRequired(entry) {
		// remote → ไม่ตรวจ ถือว่า verified
		return true, nil
	}

	if g.Location == nil {
		if g.LocationLink != "" {
			// ประกาศสถานที่ด้วยลิงก์ → ตรวจพิกัดไม่ได้ ปล่อยผ่านตาม policy
			return true, nil
		}
		return false, NewCheckinError(CodeLocationUnconfigured, "กิจกรรมนี้ยังไม่ได้ตั้งค่าพิกัดสถานที่")
	}

	if claimed == nil {
		return false, NewCheckinError(CodeInvalidInput, "ต้องส่งพิกัดอุปกรณ์สำหรับกิจกรรม onsite")
	}

	verified, distance := VerifyGeofence(*claimed, *g.Location, g.Radius())
	if !verified {
		e := NewCheckinError(CodeGeofenceViolation,
			fmt.Sprintf("อยู่นอกพื้นที่กิจกรรม (ห่าง %.0f เมตร รัศมีที่อนุญาต %.0f เมตร)", distance, g.Radius()))
		e.Details = bson.M{"distanceMeters": distance, "radiusMeters": g.Radius()}
		return false, e
	}
	return true, nil
}

// enforceDeviceBinding ตรวจ + ผูกอุปกรณ์ครั้งแรก
func enforceDeviceBinding(ctx context.Context, p *models.Participant, device, client string) error {
	switch CheckDeviceBinding(p.DeviceSignature, p.ClientSignature, device, client) {
	case DeviceFirstBinding:
		// ผูกเฉพาะตอนที่ยังว่างอยู่จริง กัน request พร้อมกันแย่งผูก
		_, err := DB.ParticipantCollection.UpdateOne(ctx,
			bson.M{"_id": p.ID, "deviceSignature": bson.M{"$in": bson.A{nil, ""}}},
			bson.M{"$set": bson.M{"deviceSignature": device, "clientSignature": client}})
		return err
	case DeviceMismatch:
		return NewCheckinError(CodeDeviceMismatch, "อุปกรณ์ไม่ตรงกับที่ลงทะเบียนไว้ กรุณาติดต่อผู้ดูแลเพื่อ reset")
	case DeviceCloning:
		return NewCheckinError(CodeDeviceCloning, "ตรวจพบ browser signature ไม่ตรงกับอุปกรณ์ที่ผูกไว้")
	}

	if p.ClientSignature == "" {
		// binding เก่าที่ยังไม่มี client signature → เติมให้ครบ
		_, err := DB.ParticipantCollection.UpdateOne(ctx,
			bson.M{"_id": p.ID, "clientSignature": bson.M{"$in": bson.A{nil, ""}}},
			bson.M{"$set": bson.M{"clientSignature": client}})
		return err
	}
	return nil
}

// ForceRequest คำขอบันทึกเช็คชื่อแทนโดย admin
type ForceRequest struct {
	GatheringID    string  `json:"gatheringId" validate:"required"`
	ParticipantID  string  `json:"participantId" validate:"required"`
	Status         string  `json:"status" validate:"required,oneof=present absent on_leave"`
	Late           bool    `json:"late"`
	MinutesLate    *int    `json:"minutesLate"`
	OccurrenceDate *string `json:"occurrenceDate"` // ไม่ส่ง = วันนี้ตามเวลา tenant
}

// ForceRecord admin บันทึก record แทน ข้ามทุกเงื่อนไขยกเว้นห้ามซ้ำ
func ForceRecord(tenantID, adminID string, req *ForceRequest) (*models.AttendanceRecord, error) {
	ctx := context.TODO()

	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	aID, err2 := primitive.ObjectIDFromHex(adminID)
	gID, err3 := primitive.ObjectIDFromHex(req.GatheringID)
	pID, err4 := primitive.ObjectIDFromHex(req.ParticipantID)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return nil, NewCheckinError(CodeInvalidInput, "รหัสไม่ถูกต้อง")
	}

	var gathering models.Gathering
	if err := DB.GatheringCollection.FindOne(ctx, bson.M{"_id": gID, "tenantId": tID}).Decode(&gathering); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewCheckinError(CodeNotFound, "ไม่พบกิจกรรม")
		}
		return nil, err
	}

	occurrence := time.Now().In(TenantZone(loadTenant(ctx, tID))).Format("2006-01-02")
	if req.OccurrenceDate != nil && *req.OccurrenceDate != "" {
		occurrence = *req.OccurrenceDate
	}

	// uniqueness ยังบังคับแม้เป็น forced record
	count, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{
		"tenantId":       tID,
		"gatheringId":    gID,
		"participantId":  pID,
		"occurrenceDate": occurrence,
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, NewCheckinError(CodeDuplicateCheckin, "มี record ของ occurrence นี้อยู่แล้ว")
	}

	record := &models.AttendanceRecord{
		TenantID:        tID,
		GatheringID:     gID,
		ParticipantID:   pID,
		OccurrenceDate:  occurrence,
		CheckInAt:       time.Now().UTC(),
		Late:            req.Late,
		MinutesLate:     req.MinutesLate,
		DeviceSignature: models.ForcedDeviceMarker,
		Forced:          true,
		ForcedBy:        &aID,
	}
	res, err := DB.AttendanceCollection.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = res.InsertedID.(primitive.ObjectID)

	_, err = DB.GatheringCollection.UpdateOne(ctx,
		bson.M{"_id": gID, "roster.participantId": pID},
		bson.M{"$set": bson.M{
			"roster.$.attendanceStatus": req.Status,
			"roster.$.lateFlag":         req.Late,
			"updatedAt":                 time.Now().UTC(),
		}})
	if err != nil {
		return nil, fmt.Errorf("บันทึก record แล้วแต่อัปเดต roster ไม่สำเร็จ: %v", err)
	}

	return record, nil
}

// GetAttendances ดึง record ทั้งหมดของ tenant แบบแบ่งหน้า
func GetAttendances(tenantID string, gatheringID, participantID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx := context.TODO()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, NewCheckinError(CodeInvalidInput, "รหัส tenant ไม่ถูกต้อง")
	}
	params.Normalize()

	filter := bson.M{"tenantId": tID}
	if gatheringID != "" {
		gID, err := primitive.ObjectIDFromHex(gatheringID)
		if err != nil {
			return nil, NewCheckinError(CodeInvalidInput, "รหัสกิจกรรมไม่ถูกต้อง")
		}
		filter["gatheringId"] = gID
	}
	if participantID != "" {
		pID, err := primitive.ObjectIDFromHex(participantID)
		if err != nil {
			return nil, NewCheckinError(CodeInvalidInput, "รหัสผู้ใช้ไม่ถูกต้อง")
		}
		filter["participantId"] = pID
	}

	total, err := DB.AttendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())
	cursor, err := DB.AttendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(records, total, params), nil
}

// GetMyAttendance ประวัติเช็คชื่อของ participant คนเดียว
func GetMyAttendance(tenantID, participantID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	return GetAttendances(tenantID, "", participantID, params)
}

// loadTenant โหลด tenant (ถ้าไม่พบใช้ค่าตั้งต้น ไม่ block การเช็คชื่อ)
func loadTenant(ctx context.Context, tenantID primitive.ObjectID) *models.Tenant {
	var tenant models.Tenant
	err := DB.TenantCollection.FindOne(ctx, bson.M{"_id": tenantID}).Decode(&tenant)
	if err != nil {
		return &models.Tenant{
			ID:               tenantID,
			UTCOffsetMinutes: models.DefaultUTCOffsetMinutes,
			LateGraceMinutes: models.DefaultLateGraceMinutes,
		}
	}
	return &tenant
}
