package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"
)

// HandleNotifyLeaveDecided handler ของ task email:notify-leave-decided
func HandleNotifyLeaveDecided(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p NotifyLeaveDecidedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		return sendDecidedEmail(sender, p.LeaveID)
	}
}

func sendDecidedEmail(sender MailSender, leaveID string) error {
	ctx := context.TODO()

	id, err := primitive.ObjectIDFromHex(leaveID)
	if err != nil {
		return fmt.Errorf("leave id ไม่ถูกต้อง: %s", leaveID)
	}

	var leave models.LeaveRequest
	if err := DB.LeaveCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave); err != nil {
		return fmt.Errorf("leave not found: %s", leaveID)
	}
	if leave.Status == models.LeavePending {
		// ยังไม่ถูกตัดสิน ไม่มีอะไรให้แจ้ง
		return nil
	}

	var participant models.Participant
	if err := DB.ParticipantCollection.FindOne(ctx, bson.M{"_id": leave.ParticipantID}).Decode(&participant); err != nil {
		return fmt.Errorf("participant not found for leave %s", leaveID)
	}
	if participant.Email == "" {
		log.Printf("⚠️ participant %s ไม่มีอีเมล ข้ามการแจ้งผลลา", participant.ID.Hex())
		return nil
	}

	statusLabel := "ได้รับการอนุมัติแล้ว"
	subject := "คำขอลาของคุณได้รับการอนุมัติ"
	if leave.Status == models.LeaveRejected {
		statusLabel = "ไม่ได้รับการอนุมัติ"
		subject = "คำขอลาของคุณไม่ได้รับการอนุมัติ"
	}

	data := DecidedEmailData{
		ParticipantName: participant.Name,
		KindLabel:       leave.Kind,
		StatusLabel:     statusLabel,
		Dates:           leave.Dates,
		Reason:          leave.Reason,
	}
	if leave.StartDate != nil {
		data.StartDate = *leave.StartDate
	}
	if leave.EndDate != nil {
		data.EndDate = *leave.EndDate
	}

	html, err := RenderDecidedEmailHTML(data)
	if err != nil {
		return err
	}
	if err := sender.Send(participant.Email, subject, html); err != nil {
		return err
	}
	log.Printf("📧 Sent leave decision email to %s (leave %s)", participant.Email, leaveID)
	return nil
}
