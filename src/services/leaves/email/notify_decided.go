package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	DB "Backend-Gatherly/src/database"
)

var decidedEmailTmpl = template.Must(
	template.New("leave-decided").
		Funcs(template.FuncMap{
			"formatDateThai": func(s string) string {
				t, err := time.Parse("2006-01-02", s)
				if err != nil {
					return s
				}
				months := []string{"", "มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}
				return fmt.Sprintf("%d %s %d", t.Day(), months[int(t.Month())], t.Year()+543)
			},
		}).
		Parse(`<html><body>
<p>เรียนคุณ {{.ParticipantName}}</p>
<p>คำขอลา{{.KindLabel}}ของคุณ {{.StatusLabel}}</p>
{{if .Dates}}<p>วันที่ลา:</p><ul>{{range .Dates}}<li>{{formatDateThai .}}</li>{{end}}</ul>
{{else}}<p>ช่วงวันที่ลา: {{formatDateThai .StartDate}} ถึง {{formatDateThai .EndDate}}</p>{{end}}
{{if .Reason}}<p>เหตุผล: {{.Reason}}</p>{{end}}
<p>-- ระบบเช็คชื่อ Gatherly</p>
</body></html>`),
)

type DecidedEmailData struct {
	ParticipantName string
	KindLabel       string
	StatusLabel     string
	Dates           []string
	StartDate       string
	EndDate         string
	Reason          string
}

// RenderDecidedEmailHTML render เนื้อหาอีเมลแจ้งผลคำขอลา
func RenderDecidedEmailHTML(data DecidedEmailData) (string, error) {
	switch strings.ToLower(data.KindLabel) {
	case "sick":
		data.KindLabel = "ป่วย"
	case "personal":
		data.KindLabel = "กิจส่วนตัว"
	case "vacation":
		data.KindLabel = "พักร้อน"
	default:
		data.KindLabel = ""
	}

	var buf bytes.Buffer
	if err := decidedEmailTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NotifyLeaveDecided แจ้งผลการอนุมัติ/ปฏิเสธคำขอลาให้ participant ทางอีเมล
// มี Redis → เข้าคิว asynq / ไม่มี → ส่งทันที
func NotifyLeaveDecided(leaveID string) {
	if DB.AsynqClient != nil {
		task, err := NewNotifyLeaveDecidedTask(leaveID)
		if err != nil {
			log.Println("❌ build notify-leave task:", err)
			return
		}
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID("notify-leave-"+leaveID), asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue notify-leave task:", err)
		} else {
			log.Println("✅ Enqueued notify-leave task:", leaveID)
		}
		return
	}

	log.Println("⚠️ Redis not available → sending leave email synchronously")
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("❌ init mail sender:", err)
		return
	}
	if err := sendDecidedEmail(sender, leaveID); err != nil {
		log.Println("❌ send leave email:", err)
	}
}
