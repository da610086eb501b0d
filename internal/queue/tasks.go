package queue

import (
	"encoding/json"

	"github.com/ecat-taratra/backend/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactNotify 新留言邮件通知任务
	TaskContactNotify = constants.TaskContactNotify
)

// ContactNotifyPayload 新留言通知任务载荷
type ContactNotifyPayload struct {
	MessageID uint   `json:"message_id"`
	Locale    string `json:"locale"`
}

// NewContactNotifyTask 创建新留言通知任务
func NewContactNotifyTask(payload ContactNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotify, body), nil
}

// ParseContactNotifyPayload 解析新留言通知任务载荷
func ParseContactNotifyPayload(task *asynq.Task) (ContactNotifyPayload, error) {
	var payload ContactNotifyPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}
