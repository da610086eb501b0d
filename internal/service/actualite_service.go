package service

import (
	"context"

	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// ActualiteService 新闻服务
type ActualiteService struct {
	repo repository.ActualiteRepository
}

// NewActualiteService 创建新闻服务
func NewActualiteService(repo repository.ActualiteRepository) *ActualiteService {
	return &ActualiteService{repo: repo}
}

// ActualiteInput 新闻输入，nil 字段在更新时保持不变
type ActualiteInput struct {
	Titre     *string
	Contenu   *string
	Image     *string
	Categorie *string
}

// List 新闻列表
func (s *ActualiteService) List(ctx context.Context, filter repository.ActualiteListFilter) ([]models.Actualite, int64, error) {
	return s.repo.List(ctx, filter)
}

// Get 获取新闻
func (s *ActualiteService) Get(ctx context.Context, id uint) (*models.Actualite, error) {
	actualite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actualite == nil {
		return nil, ErrNotFound
	}
	return actualite, nil
}

// Create 创建新闻
func (s *ActualiteService) Create(ctx context.Context, input ActualiteInput) (*models.Actualite, error) {
	actualite := &models.Actualite{}
	applyActualiteInput(actualite, input)
	if err := requireString(actualite.Titre, actualite.Categorie); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, actualite); err != nil {
		return nil, err
	}
	return actualite, nil
}

// Update 更新新闻
func (s *ActualiteService) Update(ctx context.Context, id uint, input ActualiteInput) (*models.Actualite, error) {
	actualite, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyActualiteInput(actualite, input)
	if err := requireString(actualite.Titre, actualite.Categorie); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, actualite); err != nil {
		return nil, err
	}
	return actualite, nil
}

// Delete 删除新闻
func (s *ActualiteService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func applyActualiteInput(actualite *models.Actualite, input ActualiteInput) {
	applyString(&actualite.Titre, input.Titre)
	applyString(&actualite.Contenu, input.Contenu)
	applyString(&actualite.Image, input.Image)
	applyString(&actualite.Categorie, input.Categorie)
}
