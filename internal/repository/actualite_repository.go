package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/ecat-taratra/backend/internal/models"

	"gorm.io/gorm"
)

// ActualiteRepository 新闻数据访问接口
type ActualiteRepository interface {
	List(ctx context.Context, filter ActualiteListFilter) ([]models.Actualite, int64, error)
	GetByID(ctx context.Context, id uint) (*models.Actualite, error)
	Create(ctx context.Context, actualite *models.Actualite) error
	Update(ctx context.Context, actualite *models.Actualite) error
	Delete(ctx context.Context, id uint) error
}

// GormActualiteRepository GORM 实现
type GormActualiteRepository struct {
	db *gorm.DB
}

// NewActualiteRepository 创建新闻仓库
func NewActualiteRepository(db *gorm.DB) *GormActualiteRepository {
	return &GormActualiteRepository{db: db}
}

// List 新闻列表（最新发布在前）
func (r *GormActualiteRepository) List(ctx context.Context, filter ActualiteListFilter) ([]models.Actualite, int64, error) {
	actualites := make([]models.Actualite, 0)
	query := r.db.WithContext(ctx).Model(&models.Actualite{})
	if categorie := strings.TrimSpace(filter.Categorie); categorie != "" {
		query = query.Where("categorie = ?", categorie)
	}
	query = applySearch(query, filter.Search, "titre", "contenu")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := applyPagination(query, filter.ListFilter).
		Order("date_publication DESC, id DESC").
		Find(&actualites).Error
	if err != nil {
		return nil, 0, err
	}
	return actualites, total, nil
}

// GetByID 根据 ID 获取新闻
func (r *GormActualiteRepository) GetByID(ctx context.Context, id uint) (*models.Actualite, error) {
	var actualite models.Actualite
	if err := r.db.WithContext(ctx).First(&actualite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &actualite, nil
}

// Create 创建新闻
func (r *GormActualiteRepository) Create(ctx context.Context, actualite *models.Actualite) error {
	return r.db.WithContext(ctx).Create(actualite).Error
}

// Update 更新新闻
func (r *GormActualiteRepository) Update(ctx context.Context, actualite *models.Actualite) error {
	return r.db.WithContext(ctx).Save(actualite).Error
}

// Delete 删除新闻
func (r *GormActualiteRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Actualite{}, id).Error
}
