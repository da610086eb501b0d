package service

import (
	"context"

	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// FormationService 培训项目服务
type FormationService struct {
	repo repository.FormationRepository
}

// NewFormationService 创建培训项目服务
func NewFormationService(repo repository.FormationRepository) *FormationService {
	return &FormationService{repo: repo}
}

// FormationInput 培训项目输入，nil 字段在更新时保持不变
type FormationInput struct {
	Titre       *string
	Description *string
	Programme   *string
	Image       *string
}

// List 培训项目列表
func (s *FormationService) List(ctx context.Context, filter repository.ListFilter) ([]models.Formation, int64, error) {
	return s.repo.List(ctx, filter)
}

// Get 获取培训项目
func (s *FormationService) Get(ctx context.Context, id uint) (*models.Formation, error) {
	formation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if formation == nil {
		return nil, ErrNotFound
	}
	return formation, nil
}

// Create 创建培训项目
func (s *FormationService) Create(ctx context.Context, input FormationInput) (*models.Formation, error) {
	formation := &models.Formation{}
	applyFormationInput(formation, input)
	if err := requireString(formation.Titre); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, formation); err != nil {
		return nil, err
	}
	return formation, nil
}

// Update 更新培训项目
func (s *FormationService) Update(ctx context.Context, id uint, input FormationInput) (*models.Formation, error) {
	formation, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFormationInput(formation, input)
	if err := requireString(formation.Titre); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, formation); err != nil {
		return nil, err
	}
	return formation, nil
}

// Delete 删除培训项目
func (s *FormationService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func applyFormationInput(formation *models.Formation, input FormationInput) {
	applyString(&formation.Titre, input.Titre)
	applyString(&formation.Description, input.Description)
	applyString(&formation.Programme, input.Programme)
	applyString(&formation.Image, input.Image)
}
