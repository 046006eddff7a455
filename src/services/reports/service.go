package reports

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GatheringSummary สรุปผลเช็คชื่อของ gathering หนึ่งรอบ (หนึ่ง occurrence)
type GatheringSummary struct {
	GatheringID    primitive.ObjectID `json:"gatheringId"`
	GatheringName  string             `json:"gatheringName"`
	OccurrenceDate string             `json:"occurrenceDate"`
	Reconciled     bool               `json:"reconciled"` // รอบนี้ถูก sweep ปิดแล้วหรือยัง

	RosterSize int `json:"rosterSize"`
	Present    int `json:"present"`
	Late       int `json:"late"`
	OnLeave    int `json:"onLeave"`
	Absent     int `json:"absent"`
	Forced     int `json:"forced"`
}

// GetGatheringSummary สรุปยอด present/late/absent/on_leave ของ gathering ในวันที่ระบุ
// รอบที่ reconcile แล้วอ่านจาก roster ตรง ๆ / รอบที่ยังไม่ปิดคำนวณสดจาก records + leaves
func GetGatheringSummary(tenantID, gatheringID, date string) (*GatheringSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tID, err1 := primitive.ObjectIDFromHex(tenantID)
	gID, err2 := primitive.ObjectIDFromHex(gatheringID)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("รหัสไม่ถูกต้อง")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD")
	}

	var g models.Gathering
	err := DB.GatheringCollection.FindOne(ctx, bson.M{"_id": gID, "tenantId": tID}).Decode(&g)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("ไม่พบกิจกรรม")
		}
		return nil, err
	}

	summary := &GatheringSummary{
		GatheringID:    g.ID,
		GatheringName:  g.Name,
		OccurrenceDate: date,
		RosterSize:     len(g.Roster),
		Reconciled:     g.Completed && g.LastReconciledDate != nil && *g.LastReconciledDate == date,
	}

	if summary.Reconciled {
		for _, entry := range g.Roster {
			switch entry.AttendanceStatus {
			case models.AttendancePresent:
				summary.Present++
				if entry.LateFlag {
					summary.Late++
				}
			case models.AttendanceOnLeave:
				summary.OnLeave++
			case models.AttendanceAbsent:
				summary.Absent++
			}
		}
		summary.Forced, err = countForced(ctx, tID, gID, date)
		return summary, err
	}

	// รอบยังไม่ปิด → นับจาก attendance records ที่เข้ามาแล้ว
	present, late, forced, err := countRecords(ctx, tID, gID, date)
	if err != nil {
		return nil, err
	}
	summary.Present = present
	summary.Late = late
	summary.Forced = forced

	summary.OnLeave, err = countApprovedLeaves(ctx, tID, &g, date)
	if err != nil {
		return nil, err
	}

	summary.Absent = summary.RosterSize - summary.Present - summary.OnLeave
	if summary.Absent < 0 {
		summary.Absent = 0
	}
	return summary, nil
}

// GetDailySummaries สรุปยอดของทุก gathering ที่มี record ในวันนั้น (ระดับ tenant)
func GetDailySummaries(tenantID, date string) ([]GatheringSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, fmt.Errorf("รหัส tenant ไม่ถูกต้อง")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD")
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"tenantId": tID, "occurrenceDate": date}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$gatheringId",
			"present": bson.M{"$sum": 1},
			"late":    bson.M{"$sum": bson.M{"$cond": bson.A{"$late", 1, 0}}},
			"forced":  bson.M{"$sum": bson.M{"$cond": bson.A{"$forced", 1, 0}}},
		}}},
	}

	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		GatheringID primitive.ObjectID `bson:"_id"`
		Present     int                `bson:"present"`
		Late        int                `bson:"late"`
		Forced      int                `bson:"forced"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	summaries := make([]GatheringSummary, 0, len(rows))
	for _, row := range rows {
		var g models.Gathering
		if err := DB.GatheringCollection.FindOne(ctx, bson.M{"_id": row.GatheringID}).Decode(&g); err != nil {
			continue
		}
		summaries = append(summaries, GatheringSummary{
			GatheringID:    row.GatheringID,
			GatheringName:  g.Name,
			OccurrenceDate: date,
			Reconciled:     g.Completed && g.LastReconciledDate != nil && *g.LastReconciledDate == date,
			RosterSize:     len(g.Roster),
			Present:        row.Present,
			Late:           row.Late,
			Forced:         row.Forced,
		})
	}
	return summaries, nil
}

func countRecords(ctx context.Context, tenantID, gatheringID primitive.ObjectID, date string) (present, late, forced int, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"tenantId":       tenantID,
			"gatheringId":    gatheringID,
			"occurrenceDate": date,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"present": bson.M{"$sum": 1},
			"late":    bson.M{"$sum": bson.M{"$cond": bson.A{"$late", 1, 0}}},
			"forced":  bson.M{"$sum": bson.M{"$cond": bson.A{"$forced", 1, 0}}},
		}}},
	}

	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, 0, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Present int `bson:"present"`
		Late    int `bson:"late"`
		Forced  int `bson:"forced"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, 0, nil
	}
	return rows[0].Present, rows[0].Late, rows[0].Forced, nil
}

func countForced(ctx context.Context, tenantID, gatheringID primitive.ObjectID, date string) (int, error) {
	n, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{
		"tenantId":       tenantID,
		"gatheringId":    gatheringID,
		"occurrenceDate": date,
		"forced":         true,
	})
	return int(n), err
}

func countApprovedLeaves(ctx context.Context, tenantID primitive.ObjectID, g *models.Gathering, date string) (int, error) {
	if len(g.Roster) == 0 {
		return 0, nil
	}
	ids := make([]primitive.ObjectID, 0, len(g.Roster))
	for _, entry := range g.Roster {
		ids = append(ids, entry.ParticipantID)
	}

	participants, err := DB.LeaveCollection.Distinct(ctx, "participantId", bson.M{
		"tenantId":      tenantID,
		"participantId": bson.M{"$in": ids},
		"status":        models.LeaveApproved,
		"$or": bson.A{
			bson.M{"dates": date},
			bson.M{
				"dates":     bson.M{"$in": bson.A{nil, bson.A{}}},
				"startDate": bson.M{"$lte": date},
				"endDate":   bson.M{"$gte": date},
			},
		},
	})
	if err != nil {
		return 0, err
	}
	return len(participants), nil
}
