package jobs

import (
	"github.com/hibiken/asynq"
)

const TypeReconcileSweep = "attendance:reconcile-sweep"

// NewReconcileSweepTask task กวาด reconcile หนึ่งรอบ (ไม่มี payload)
func NewReconcileSweepTask() *asynq.Task {
	return asynq.NewTask(TypeReconcileSweep, nil)
}
