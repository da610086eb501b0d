package service

import (
	"context"
	"time"

	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// DirectorService 校长信息服务
type DirectorService struct {
	repo repository.DirectorRepository
}

// NewDirectorService 创建校长信息服务
func NewDirectorService(repo repository.DirectorRepository) *DirectorService {
	return &DirectorService{repo: repo}
}

// DirectorInput 校长输入，nil 字段在更新时保持不变
type DirectorInput struct {
	Name      *string
	Title     *string
	Bio       *string
	Email     *string
	PhotoURL  *string
	Message   *string
	StartDate *time.Time
}

// List 校长列表
func (s *DirectorService) List(ctx context.Context, filter repository.ListFilter) ([]models.Director, int64, error) {
	return s.repo.List(ctx, filter)
}

// Get 获取校长
func (s *DirectorService) Get(ctx context.Context, id uint) (*models.Director, error) {
	director, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if director == nil {
		return nil, ErrNotFound
	}
	return director, nil
}

// Create 创建校长
func (s *DirectorService) Create(ctx context.Context, input DirectorInput) (*models.Director, error) {
	director := &models.Director{}
	applyDirectorInput(director, input)
	if err := requireString(director.Name, director.Title); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// Update 更新校长
func (s *DirectorService) Update(ctx context.Context, id uint, input DirectorInput) (*models.Director, error) {
	director, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyDirectorInput(director, input)
	if err := requireString(director.Name, director.Title); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// Delete 删除校长
func (s *DirectorService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func applyDirectorInput(director *models.Director, input DirectorInput) {
	applyString(&director.Name, input.Name)
	applyString(&director.Title, input.Title)
	applyString(&director.Bio, input.Bio)
	applyString(&director.Email, input.Email)
	applyString(&director.PhotoURL, input.PhotoURL)
	applyString(&director.Message, input.Message)
	if input.StartDate != nil {
		startDate := *input.StartDate
		director.StartDate = &startDate
	}
}
