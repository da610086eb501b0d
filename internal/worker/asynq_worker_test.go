package worker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ecat-taratra/backend/internal/config"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/provider"
	"github.com/ecat-taratra/backend/internal/queue"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

type recordingNotifier struct {
	sentTo []string
	err    error
}

func (n *recordingNotifier) NotifyRecipient() string {
	return "direction@ecat-taratra.mg"
}

func (n *recordingNotifier) SendContactNotification(toEmail string, input service.ContactNotificationInput, locale string) error {
	if n.err != nil {
		return n.err
	}
	n.sentTo = append(n.sentTo, toEmail)
	return nil
}

func newTestConsumer(t *testing.T, notifier service.ContactNotificationSender) (*Consumer, *provider.Container) {
	t.Helper()
	dsn := fmt.Sprintf("file:worker_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.ContactInfo{}, &models.ContactMessage{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "worker-test-secret-0123456789abcdef"
	container, err := provider.NewContainerWithDB(cfg, db)
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	container.ContactMessageService = service.NewContactMessageService(
		container.ContactMessageRepo,
		container.ContactInfoRepo,
		container.QueueClient,
		notifier,
	)
	return NewConsumer(container), container
}

func TestHandleContactNotifySendsEmail(t *testing.T) {
	notifier := &recordingNotifier{}
	consumer, container := newTestConsumer(t, notifier)
	ctx := context.Background()

	message := &models.ContactMessage{Name: "Visiteur", Email: "v@example.com", Subject: "Stage", Message: "Bonjour"}
	if err := container.ContactMessageRepo.Create(ctx, message); err != nil {
		t.Fatalf("create message failed: %v", err)
	}

	task, err := queue.NewContactNotifyTask(queue.ContactNotifyPayload{MessageID: message.ID, Locale: "fr"})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleContactNotify(ctx, task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}
	if len(notifier.sentTo) != 1 || notifier.sentTo[0] != "direction@ecat-taratra.mg" {
		t.Fatalf("unexpected recipients: %v", notifier.sentTo)
	}
}

func TestHandleContactNotifySkipsInvalidPayload(t *testing.T) {
	notifier := &recordingNotifier{}
	consumer, _ := newTestConsumer(t, notifier)

	task := asynq.NewTask(queue.TaskContactNotify, []byte(`{"message_id":0}`))
	if err := consumer.handleContactNotify(context.Background(), task); err != nil {
		t.Fatalf("zero id should be skipped, got %v", err)
	}
	broken := asynq.NewTask(queue.TaskContactNotify, []byte(`{not json`))
	if err := consumer.handleContactNotify(context.Background(), broken); err == nil {
		t.Fatalf("malformed payload should fail")
	}
	if len(notifier.sentTo) != 0 {
		t.Fatalf("nothing should be sent")
	}
}

func TestHandleContactNotifyPropagatesSendError(t *testing.T) {
	sendErr := errors.New("smtp unavailable")
	notifier := &recordingNotifier{err: sendErr}
	consumer, container := newTestConsumer(t, notifier)
	ctx := context.Background()

	message := &models.ContactMessage{Name: "Visiteur", Email: "v@example.com", Subject: "Stage", Message: "Bonjour"}
	if err := container.ContactMessageRepo.Create(ctx, message); err != nil {
		t.Fatalf("create message failed: %v", err)
	}
	task, err := queue.NewContactNotifyTask(queue.ContactNotifyPayload{MessageID: message.ID})
	if err != nil {
		t.Fatalf("new task failed: %v", err)
	}
	if err := consumer.handleContactNotify(ctx, task); !errors.Is(err, sendErr) {
		t.Fatalf("send error should propagate for retry, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(&config.QueueConfig{Enabled: false}, &Consumer{}); !errors.Is(err, ErrQueueDisabled) {
		t.Fatalf("want ErrQueueDisabled got %v", err)
	}
	if _, err := NewService(&config.QueueConfig{Enabled: true}, nil); err == nil {
		t.Fatalf("nil consumer should fail")
	}
}
