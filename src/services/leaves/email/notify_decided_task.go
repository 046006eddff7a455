package email

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeNotifyLeaveDecided = "email:notify-leave-decided"

type NotifyLeaveDecidedPayload struct {
	LeaveID string `json:"leaveId"`
}

func NewNotifyLeaveDecidedTask(leaveID string) (*asynq.Task, error) {
	b, err := json.Marshal(NotifyLeaveDecidedPayload{LeaveID: leaveID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyLeaveDecided, b), nil
}
