package jobs

import (
	"context"
	"log"
	"time"

	"Backend-Gatherly/src/services/reconcile"

	"github.com/hibiken/asynq"
)

// HandleReconcileSweepTask กวาดทุก tenant หนึ่งรอบ
// worker เปิด concurrency = 1 → รอบใหม่ไม่เริ่มก่อนรอบเก่าจบ
func HandleReconcileSweepTask(ctx context.Context, t *asynq.Task) error {
	start := time.Now()
	log.Println("🔄 Reconcile sweep started")

	sweeper := reconcile.NewSweeper()
	if err := sweeper.RunSweep(ctx); err != nil {
		log.Println("❌ Reconcile sweep failed:", err)
		return err
	}

	log.Printf("✅ Reconcile sweep finished in %v", time.Since(start))
	return nil
}
