package repository

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// FormationRepository 培训项目数据访问接口
type FormationRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Formation, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Formation, error)
	Create(ctx context.Context, formation *models.Formation) error
	Update(ctx context.Context, formation *models.Formation) error
	Delete(ctx context.Context, id uint) error
}

// GormFormationRepository GORM 实现
type GormFormationRepository struct {
	db *gorm.DB
}

// NewFormationRepository 创建培训项目仓库
func NewFormationRepository(db *gorm.DB) *GormFormationRepository {
	return &GormFormationRepository{db: db}
}

// List 培训项目列表
func (r *GormFormationRepository) List(ctx context.Context, filter ListFilter) ([]models.Formation, int64, error) {
	formations := make([]models.Formation, 0)
	query := r.db.WithContext(ctx).Model(&models.Formation{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := applyPagination(query, filter).Order("id ASC").Find(&formations).Error; err != nil {
		return nil, 0, err
	}
	return formations, total, nil
}

// GetByID 根据 ID 获取培训项目
func (r *GormFormationRepository) GetByID(ctx context.Context, id uint) (*models.Formation, error) {
	var formation models.Formation
	if err := r.db.WithContext(ctx).First(&formation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &formation, nil
}

// Create 创建培训项目
func (r *GormFormationRepository) Create(ctx context.Context, formation *models.Formation) error {
	return r.db.WithContext(ctx).Create(formation).Error
}

// Update 更新培训项目
func (r *GormFormationRepository) Update(ctx context.Context, formation *models.Formation) error {
	return r.db.WithContext(ctx).Save(formation).Error
}

// Delete 删除培训项目
func (r *GormFormationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Formation{}, id).Error
}
