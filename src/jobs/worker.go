package jobs

import (
	"log"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/services/leaves/email"
	"Backend-Gatherly/src/services/reconcile"

	"github.com/hibiken/asynq"
)

// StartWorker เปิด asynq worker สำหรับ background tasks
// concurrency = 1 เพราะ reconcile sweep ต้องวิ่งทีละรอบเท่านั้น
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available → background worker disabled")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 1},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReconcileSweep, HandleReconcileSweepTask)

	// อีเมลแจ้งผลคำขอลา ลงทะเบียนเฉพาะเมื่อตั้งค่า SMTP ครบ
	if sender, err := email.NewSMTPSenderFromEnv(); err != nil {
		log.Println("⚠️ SMTP not configured → leave email notifications disabled:", err)
	} else {
		mux.HandleFunc(email.TypeNotifyLeaveDecided, email.HandleNotifyLeaveDecided(sender))
	}

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatal("❌ Failed to start asynq worker:", err)
		}
	}()
	log.Println("✅ Background worker started")
}

// StartScheduler ตั้ง task กวาด reconcile ทุก 10 นาที
// หมายเหตุ: ต้องมี scheduler ตัวเดียวใน deployment ไม่งั้นจะกวาดซ้ำ
func StartScheduler() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available → reconcile scheduler disabled")
		return
	}

	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		&asynq.SchedulerOpts{},
	)

	entryID, err := scheduler.Register(
		"@every "+reconcile.SweepInterval.String(),
		NewReconcileSweepTask(),
	)
	if err != nil {
		log.Fatal("❌ Failed to register reconcile sweep:", err)
	}
	log.Println("✅ Reconcile sweep scheduled:", entryID)

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatal("❌ Failed to start scheduler:", err)
		}
	}()
}
