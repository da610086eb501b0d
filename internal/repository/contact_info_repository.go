package repository

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// ContactInfoRepository 联系信息数据访问接口
type ContactInfoRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.ContactInfo, int64, error)
	GetByID(ctx context.Context, id uint) (*models.ContactInfo, error)
	GetFirst(ctx context.Context) (*models.ContactInfo, error)
	Create(ctx context.Context, info *models.ContactInfo) error
	Update(ctx context.Context, info *models.ContactInfo) error
	Delete(ctx context.Context, id uint) error
}

// GormContactInfoRepository GORM 实现
type GormContactInfoRepository struct {
	db *gorm.DB
}

// NewContactInfoRepository 创建联系信息仓库
func NewContactInfoRepository(db *gorm.DB) *GormContactInfoRepository {
	return &GormContactInfoRepository{db: db}
}

// List 联系信息列表
func (r *GormContactInfoRepository) List(ctx context.Context, filter ListFilter) ([]models.ContactInfo, int64, error) {
	infos := make([]models.ContactInfo, 0)
	query := r.db.WithContext(ctx).Model(&models.ContactInfo{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query, filter).Order("id ASC").Find(&infos).Error; err != nil {
		return nil, 0, err
	}
	return infos, total, nil
}

// GetByID 根据 ID 获取联系信息
func (r *GormContactInfoRepository) GetByID(ctx context.Context, id uint) (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := r.db.WithContext(ctx).First(&info, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// GetFirst 获取首条联系信息（站点主联系方式）
func (r *GormContactInfoRepository) GetFirst(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := r.db.WithContext(ctx).Order("id ASC").First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

// Create 创建联系信息
func (r *GormContactInfoRepository) Create(ctx context.Context, info *models.ContactInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

// Update 更新联系信息
func (r *GormContactInfoRepository) Update(ctx context.Context, info *models.ContactInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

// Delete 删除联系信息
func (r *GormContactInfoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ContactInfo{}, id).Error
}
