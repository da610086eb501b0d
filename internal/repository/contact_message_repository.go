package repository

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// ContactMessageRepository 留言数据访问接口
type ContactMessageRepository interface {
	List(ctx context.Context, filter ContactMessageListFilter) ([]models.ContactMessage, int64, error)
	GetByID(ctx context.Context, id uint) (*models.ContactMessage, error)
	Create(ctx context.Context, message *models.ContactMessage) error
	Update(ctx context.Context, message *models.ContactMessage) error
	MarkRead(ctx context.Context, id uint) error
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

// GormContactMessageRepository GORM 实现
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository 创建留言仓库
func NewContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// List 留言列表（最新在前）
func (r *GormContactMessageRepository) List(ctx context.Context, filter ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	messages := make([]models.ContactMessage, 0)
	query := r.db.WithContext(ctx).Model(&models.ContactMessage{})
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	query = applySearch(query, filter.Search, "name", "email", "subject")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := applyPagination(query, filter.ListFilter).
		Order("created_at DESC, id DESC").
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取留言
func (r *GormContactMessageRepository) GetByID(ctx context.Context, id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create 创建留言
func (r *GormContactMessageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// Update 更新留言
func (r *GormContactMessageRepository) Update(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// MarkRead 标记为已读
func (r *GormContactMessageRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("id = ?", id).Update("is_read", true).Error
}

// CountUnread 统计未读留言
func (r *GormContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete 删除留言
func (r *GormContactMessageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ContactMessage{}, id).Error
}
