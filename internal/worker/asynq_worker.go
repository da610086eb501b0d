package worker

import (
	"context"

	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/provider"
	"github.com/ecat-taratra/backend/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskContactNotify, c.handleContactNotify)
}

func (c *Consumer) handleContactNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_contact_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseContactNotifyPayload(task)
	if err != nil {
		logger.Warnw("worker_contact_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.MessageID == 0 {
		logger.Debugw("worker_contact_notify_skip_invalid_payload", "message_id", payload.MessageID)
		return nil
	}
	if c.ContactMessageService == nil {
		logger.Warnw("worker_contact_notify_skip_service_nil", "message_id", payload.MessageID)
		return nil
	}
	if err := c.ContactMessageService.Notify(ctx, payload.MessageID, payload.Locale); err != nil {
		logger.Warnw("worker_contact_notify_send_failed",
			"message_id", payload.MessageID,
			"locale", payload.Locale,
			"error", err,
		)
		return err
	}
	return nil
}
