package repository

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// AboutRepository 关于内容数据访问接口
type AboutRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.AboutContent, int64, error)
	GetByID(ctx context.Context, id uint) (*models.AboutContent, error)
	Create(ctx context.Context, content *models.AboutContent) error
	Update(ctx context.Context, content *models.AboutContent) error
	Delete(ctx context.Context, id uint) error
}

// GormAboutRepository GORM 实现
type GormAboutRepository struct {
	db *gorm.DB
}

// NewAboutRepository 创建关于内容仓库
func NewAboutRepository(db *gorm.DB) *GormAboutRepository {
	return &GormAboutRepository{db: db}
}

// List 关于内容列表
func (r *GormAboutRepository) List(ctx context.Context, filter ListFilter) ([]models.AboutContent, int64, error) {
	contents := make([]models.AboutContent, 0)
	query := r.db.WithContext(ctx).Model(&models.AboutContent{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query, filter).Order("id ASC").Find(&contents).Error; err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

// GetByID 根据 ID 获取关于内容
func (r *GormAboutRepository) GetByID(ctx context.Context, id uint) (*models.AboutContent, error) {
	var content models.AboutContent
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// Create 创建关于内容
func (r *GormAboutRepository) Create(ctx context.Context, content *models.AboutContent) error {
	return r.db.WithContext(ctx).Create(content).Error
}

// Update 更新关于内容
func (r *GormAboutRepository) Update(ctx context.Context, content *models.AboutContent) error {
	return r.db.WithContext(ctx).Save(content).Error
}

// Delete 删除关于内容
func (r *GormAboutRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.AboutContent{}, id).Error
}
