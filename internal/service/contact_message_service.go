package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/queue"
	"github.com/ecat-taratra/backend/internal/repository"
)

// ContactNotificationSender 留言通知发送方
type ContactNotificationSender interface {
	NotifyRecipient() string
	SendContactNotification(toEmail string, input ContactNotificationInput, locale string) error
}

// ContactMessageService 访客留言服务
type ContactMessageService struct {
	repo            repository.ContactMessageRepository
	contactInfoRepo repository.ContactInfoRepository
	queueClient     *queue.Client
	notifier        ContactNotificationSender
}

// NewContactMessageService 创建访客留言服务
func NewContactMessageService(
	repo repository.ContactMessageRepository,
	contactInfoRepo repository.ContactInfoRepository,
	queueClient *queue.Client,
	notifier ContactNotificationSender,
) *ContactMessageService {
	return &ContactMessageService{
		repo:            repo,
		contactInfoRepo: contactInfoRepo,
		queueClient:     queueClient,
		notifier:        notifier,
	}
}

// ContactMessageInput 留言输入，nil 字段在更新时保持不变
type ContactMessageInput struct {
	Name    *string
	Email   *string
	Subject *string
	Message *string
	IsRead  *bool
}

// List 留言列表
func (s *ContactMessageService) List(ctx context.Context, filter repository.ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	return s.repo.List(ctx, filter)
}

// CountUnread 未读留言数
func (s *ContactMessageService) CountUnread(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

// Get 获取留言
func (s *ContactMessageService) Get(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// Create 保存访客留言并投递通知任务
func (s *ContactMessageService) Create(ctx context.Context, input ContactMessageInput, locale string) (*models.ContactMessage, error) {
	message := &models.ContactMessage{}
	applyContactMessageInput(message, input)
	message.IsRead = false
	if err := validateContactMessage(message); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	logger.Infow("contact_message_created", "message_id", message.ID)

	// 通知投递失败不影响留言保存
	if err := s.queueClient.EnqueueContactNotify(queue.ContactNotifyPayload{
		MessageID: message.ID,
		Locale:    locale,
	}); err != nil {
		logger.Warnw("contact_notify_enqueue_failed", "message_id", message.ID, "error", err)
	}
	return message, nil
}

// Update 更新留言
func (s *ContactMessageService) Update(ctx context.Context, id uint, input ContactMessageInput) (*models.ContactMessage, error) {
	message, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyContactMessageInput(message, input)
	if input.IsRead != nil {
		message.IsRead = *input.IsRead
	}
	if err := validateContactMessage(message); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// MarkRead 标记留言已读
func (s *ContactMessageService) MarkRead(ctx context.Context, id uint) (*models.ContactMessage, error) {
	message, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if message.IsRead {
		return message, nil
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	message.IsRead = true
	return message, nil
}

// Delete 删除留言
func (s *ContactMessageService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Notify 发送新留言邮件通知，收件人优先取邮件配置，其次取站点联系邮箱
func (s *ContactMessageService) Notify(ctx context.Context, id uint, locale string) error {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if message == nil {
		logger.Warnw("contact_notify_message_missing", "message_id", id)
		return nil
	}
	if s.notifier == nil {
		return ErrEmailServiceDisabled
	}

	recipient := s.notifier.NotifyRecipient()
	if recipient == "" && s.contactInfoRepo != nil {
		info, err := s.contactInfoRepo.GetFirst(ctx)
		if err != nil {
			return err
		}
		if info != nil {
			recipient = strings.TrimSpace(info.Email)
		}
	}
	if recipient == "" {
		logger.Warnw("contact_notify_no_recipient", "message_id", id)
		return nil
	}

	err = s.notifier.SendContactNotification(recipient, ContactNotificationInput{
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}, locale)
	if err != nil {
		if errors.Is(err, ErrEmailServiceDisabled) || errors.Is(err, ErrEmailServiceNotConfigured) {
			logger.Warnw("contact_notify_email_unavailable", "message_id", id, "error", err)
			return nil
		}
		return err
	}
	logger.Infow("contact_notify_sent", "message_id", id)
	return nil
}

func validateContactMessage(message *models.ContactMessage) error {
	if err := requireString(message.Name, message.Email, message.Subject, message.Message); err != nil {
		return err
	}
	email, err := validateEmailAddress(message.Email)
	if err != nil {
		return err
	}
	message.Email = email
	return nil
}

func applyContactMessageInput(message *models.ContactMessage, input ContactMessageInput) {
	applyString(&message.Name, input.Name)
	applyString(&message.Email, input.Email)
	applyString(&message.Subject, input.Subject)
	applyString(&message.Message, input.Message)
}
