package service

import (
	"context"

	"github.com/ecat-taratra/backend/internal/cache"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// AboutService 关于内容服务
type AboutService struct {
	repo repository.AboutRepository
}

// NewAboutService 创建关于内容服务
func NewAboutService(repo repository.AboutRepository) *AboutService {
	return &AboutService{repo: repo}
}

// AboutInput 关于内容输入，nil 字段在更新时保持不变
type AboutInput struct {
	Title       *string
	Description *string
	Mission     *string
	Vision      *string
	History     *string
}

// ListPublic 公开列表，完整列表缓存在 Redis 中
func (s *AboutService) ListPublic(ctx context.Context, filter repository.ListFilter) ([]models.AboutContent, int64, error) {
	var cached []models.AboutContent
	hit, err := cache.GetJSON(ctx, cache.AboutListKey, &cached)
	if err != nil {
		logger.Warnw("about_list_cache_get_failed", "error", err)
	}
	if !hit {
		cached, _, err = s.repo.List(ctx, repository.ListFilter{})
		if err != nil {
			return nil, 0, err
		}
		if err := cache.SetJSON(ctx, cache.AboutListKey, cached, cache.ContentListTTL()); err != nil {
			logger.Warnw("about_list_cache_set_failed", "error", err)
		}
	}
	return sliceByFilter(cached, filter), int64(len(cached)), nil
}

// Get 获取关于内容
func (s *AboutService) Get(ctx context.Context, id uint) (*models.AboutContent, error) {
	content, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrNotFound
	}
	return content, nil
}

// Create 创建关于内容
func (s *AboutService) Create(ctx context.Context, input AboutInput) (*models.AboutContent, error) {
	content := &models.AboutContent{}
	applyAboutInput(content, input)
	if err := requireString(content.Title); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, content); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return content, nil
}

// Update 更新关于内容
func (s *AboutService) Update(ctx context.Context, id uint, input AboutInput) (*models.AboutContent, error) {
	content, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyAboutInput(content, input)
	if err := requireString(content.Title); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, content); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return content, nil
}

// Delete 删除关于内容
func (s *AboutService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *AboutService) invalidate(ctx context.Context) {
	if err := cache.Del(ctx, cache.AboutListKey); err != nil {
		logger.Warnw("about_list_cache_del_failed", "error", err)
	}
}

func applyAboutInput(content *models.AboutContent, input AboutInput) {
	applyString(&content.Title, input.Title)
	applyString(&content.Description, input.Description)
	applyString(&content.Mission, input.Mission)
	applyString(&content.Vision, input.Vision)
	applyString(&content.History, input.History)
}
