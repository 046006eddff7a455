package reconcile

import (
	"context"
	"log"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"
	"Backend-Gatherly/src/services/attendances"
	"Backend-Gatherly/src/services/leaves"
	"Backend-Gatherly/src/services/tenants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SweepInterval รอบของ reconciler (ค่าคงที่ของระบบ)
const SweepInterval = 10 * time.Minute

// Sweeper กวาดทุก tenant ทุก gathering ปิดสถานะ occurrence ที่หมดเวลาแล้ว
// Now ฉีด clock เข้ามาได้เพื่อให้ test เลื่อนเวลาเองโดยไม่ต้องรอ timer จริง
type Sweeper struct {
	Now func() time.Time
}

// NewSweeper สร้าง Sweeper ที่ใช้เวลาจริง
func NewSweeper() *Sweeper {
	return &Sweeper{Now: time.Now}
}

// RunSweep กวาดหนึ่งรอบ ทุก tenant ตามลำดับ
// error ราย tenant / ราย gathering ไม่ทำให้รอบทั้งหมดล้ม แค่ log แล้วไปต่อ
func (s *Sweeper) RunSweep(ctx context.Context) error {
	activeTenants, err := tenants.GetActiveTenants(ctx)
	if err != nil {
		return err
	}

	for i := range activeTenants {
		tenant := &activeTenants[i]
		if err := s.sweepTenant(ctx, tenant); err != nil {
			log.Printf("❌ Reconcile sweep failed for tenant %s: %v", tenant.ID.Hex(), err)
		}
	}
	return nil
}

func (s *Sweeper) sweepTenant(ctx context.Context, tenant *models.Tenant) error {
	cursor, err := DB.GatheringCollection.Find(ctx, bson.M{
		"tenantId":  tenant.ID,
		"cancelled": false,
	})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var g models.Gathering
		if err := cursor.Decode(&g); err != nil {
			log.Println("❌ Failed to decode gathering:", err)
			continue
		}
		if err := s.reconcileGathering(ctx, tenant, &g); err != nil {
			log.Printf("❌ Failed to reconcile gathering %s: %v", g.ID.Hex(), err)
		}
	}
	return cursor.Err()
}

func (s *Sweeper) reconcileGathering(ctx context.Context, tenant *models.Tenant, g *models.Gathering) error {
	window, err := attendances.ResolveWindow(g, tenant, s.Now())
	if err != nil {
		return err
	}

	if window.State == attendances.WindowNotToday {
		return nil
	}

	if g.Completed {
		// occurrence เดิมปิดไปแล้ว → รอบซ้ำในวันเดียวกันเป็น no-op
		if g.LastReconciledDate != nil && *g.LastReconciledDate == window.OccurrenceDate {
			return nil
		}
		// ถึงรอบวันใหม่ของ gathering ที่เกิดซ้ำ → reset สถานะรอบก่อนทิ้ง
		if err := s.resetCycle(ctx, g); err != nil {
			return err
		}
	}

	// ยังไม่หมดเวลา → รอรอบถัดไป
	if !s.Now().In(attendances.TenantZone(tenant)).After(window.End) {
		return nil
	}

	allTerminal := true
	changed := 0
	for i := range g.Roster {
		entry := &g.Roster[i]
		if entry.AttendanceStatus != models.AttendanceUnset {
			continue
		}

		status, lateFlag, err := s.finalizeEntry(ctx, tenant, g, entry, window.OccurrenceDate)
		if err != nil {
			log.Printf("❌ Failed to finalize %s in gathering %s: %v",
				entry.ParticipantID.Hex(), g.ID.Hex(), err)
			allTerminal = false
			continue
		}

		res, err := DB.GatheringCollection.UpdateOne(ctx,
			bson.M{"_id": g.ID, "roster.participantId": entry.ParticipantID},
			bson.M{"$set": bson.M{
				"roster.$.attendanceStatus": status,
				"roster.$.lateFlag":         lateFlag,
			}})
		if err != nil || res.MatchedCount == 0 {
			log.Printf("❌ Failed to update roster for %s in gathering %s: %v",
				entry.ParticipantID.Hex(), g.ID.Hex(), err)
			allTerminal = false
			continue
		}
		entry.AttendanceStatus = status
		entry.LateFlag = lateFlag
		changed++
	}

	if !allTerminal {
		return nil
	}

	_, err = DB.GatheringCollection.UpdateOne(ctx,
		bson.M{"_id": g.ID},
		bson.M{"$set": bson.M{
			"completed":          true,
			"lastReconciledDate": window.OccurrenceDate,
			"updatedAt":          time.Now().UTC(),
		}})
	if err != nil {
		return err
	}

	log.Printf("✅ Reconciled gathering %s (%s): %d entries finalized", g.ID.Hex(), g.Name, changed)
	return nil
}

// DecideFinalStatus ตัดสินสถานะปลายทางของ roster entry ที่ยังว่างตอนหมดเวลา
// มี record → present / มี leave อนุมัติ → on_leave / ไม่มีอะไรเลย → absent (ต้อง synthesize record)
func DecideFinalStatus(hasRecord, recordLate, onLeave bool) (status string, lateFlag bool, synthesize bool) {
	if hasRecord {
		return models.AttendancePresent, recordLate, false
	}
	if onLeave {
		// ลาอนุมัติแล้ว → ไม่ต้องสร้าง record
		return models.AttendanceOnLeave, false, false
	}
	return models.AttendanceAbsent, false, true
}

func (s *Sweeper) finalizeEntry(ctx context.Context, tenant *models.Tenant, g *models.Gathering, entry *models.RosterEntry, occurrenceDate string) (string, bool, error) {
	var record models.AttendanceRecord
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{
		"tenantId":       tenant.ID,
		"gatheringId":    g.ID,
		"participantId":  entry.ParticipantID,
		"occurrenceDate": occurrenceDate,
	}).Decode(&record)
	hasRecord := err == nil
	if err != nil && err != mongo.ErrNoDocuments {
		return "", false, err
	}

	var onLeave bool
	if !hasRecord {
		leave, err := leaves.FindApprovedLeaveForDate(ctx, tenant.ID, entry.ParticipantID, occurrenceDate)
		if err != nil {
			return "", false, err
		}
		onLeave = leave != nil
	}

	status, lateFlag, synthesize := DecideFinalStatus(hasRecord, record.Late, onLeave)
	if !synthesize {
		return status, lateFlag, nil
	}

	absent := &models.AttendanceRecord{
		TenantID:        tenant.ID,
		GatheringID:     g.ID,
		ParticipantID:   entry.ParticipantID,
		OccurrenceDate:  occurrenceDate,
		CheckInAt:       time.Now().UTC(),
		Late:            false,
		DeviceSignature: models.AutoAbsentDeviceMarker,
		Forced:          false,
	}
	if _, err := DB.AttendanceCollection.InsertOne(ctx, absent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// เช็คชื่อแทรกเข้ามาระหว่าง sweep → นับเป็นมา
			return models.AttendancePresent, false, nil
		}
		return "", false, err
	}
	return models.AttendanceAbsent, false, nil
}

// resetCycle ล้างสถานะของ occurrence ก่อนหน้า เตรียมรอบใหม่
func (s *Sweeper) resetCycle(ctx context.Context, g *models.Gathering) error {
	_, err := DB.GatheringCollection.UpdateOne(ctx,
		bson.M{"_id": g.ID},
		bson.M{"$set": bson.M{
			"completed":                   false,
			"roster.$[].attendanceStatus": models.AttendanceUnset,
			"roster.$[].lateFlag":         false,
		}})
	if err != nil {
		return err
	}
	g.Completed = false
	for i := range g.Roster {
		g.Roster[i].AttendanceStatus = models.AttendanceUnset
		g.Roster[i].LateFlag = false
	}
	return nil
}
