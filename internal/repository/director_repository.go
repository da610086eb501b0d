package repository

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// DirectorRepository 校长数据访问接口
type DirectorRepository interface {
	List(ctx context.Context, filter ListFilter) ([]models.Director, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Director, error)
	Create(ctx context.Context, director *models.Director) error
	Update(ctx context.Context, director *models.Director) error
	Delete(ctx context.Context, id uint) error
}

// GormDirectorRepository GORM 实现
type GormDirectorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository 创建校长仓库
func NewDirectorRepository(db *gorm.DB) *GormDirectorRepository {
	return &GormDirectorRepository{db: db}
}

// List 校长列表（按任职时间倒序，未填写的排在最后）
func (r *GormDirectorRepository) List(ctx context.Context, filter ListFilter) ([]models.Director, int64, error) {
	directors := make([]models.Director, 0)
	query := r.db.WithContext(ctx).Model(&models.Director{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := applyPagination(query, filter).
		Order("CASE WHEN start_date IS NULL THEN 1 ELSE 0 END, start_date DESC, id ASC").
		Find(&directors).Error
	if err != nil {
		return nil, 0, err
	}
	return directors, total, nil
}

// GetByID 根据 ID 获取校长
func (r *GormDirectorRepository) GetByID(ctx context.Context, id uint) (*models.Director, error) {
	var director models.Director
	if err := r.db.WithContext(ctx).First(&director, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &director, nil
}

// Create 创建校长
func (r *GormDirectorRepository) Create(ctx context.Context, director *models.Director) error {
	return r.db.WithContext(ctx).Create(director).Error
}

// Update 更新校长
func (r *GormDirectorRepository) Update(ctx context.Context, director *models.Director) error {
	return r.db.WithContext(ctx).Save(director).Error
}

// Delete 删除校长
func (r *GormDirectorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Director{}, id).Error
}
