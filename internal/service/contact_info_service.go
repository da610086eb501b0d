package service

import (
	"context"
	"strings"

	"github.com/ecat-taratra/backend/internal/cache"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// ContactInfoService 联系方式服务
type ContactInfoService struct {
	repo repository.ContactInfoRepository
}

// NewContactInfoService 创建联系方式服务
func NewContactInfoService(repo repository.ContactInfoRepository) *ContactInfoService {
	return &ContactInfoService{repo: repo}
}

// ContactInfoInput 联系方式输入，nil 字段在更新时保持不变
type ContactInfoInput struct {
	Email       *string
	Phone       *string
	Address     *string
	MapURL      *string
	SocialMedia *string
}

// ListPublic 公开列表，完整列表缓存在 Redis 中
func (s *ContactInfoService) ListPublic(ctx context.Context, filter repository.ListFilter) ([]models.ContactInfo, int64, error) {
	var cached []models.ContactInfo
	hit, err := cache.GetJSON(ctx, cache.ContactInfoListKey, &cached)
	if err != nil {
		logger.Warnw("contact_info_list_cache_get_failed", "error", err)
	}
	if !hit {
		cached, _, err = s.repo.List(ctx, repository.ListFilter{})
		if err != nil {
			return nil, 0, err
		}
		if err := cache.SetJSON(ctx, cache.ContactInfoListKey, cached, cache.ContentListTTL()); err != nil {
			logger.Warnw("contact_info_list_cache_set_failed", "error", err)
		}
	}
	return sliceByFilter(cached, filter), int64(len(cached)), nil
}

// Get 获取联系方式
func (s *ContactInfoService) Get(ctx context.Context, id uint) (*models.ContactInfo, error) {
	info, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNotFound
	}
	return info, nil
}

// PrimaryEmail 站点联系邮箱（第一条联系方式）
func (s *ContactInfoService) PrimaryEmail(ctx context.Context) (string, error) {
	info, err := s.repo.GetFirst(ctx)
	if err != nil {
		return "", err
	}
	if info == nil {
		return "", nil
	}
	return strings.TrimSpace(info.Email), nil
}

// Create 创建联系方式
func (s *ContactInfoService) Create(ctx context.Context, input ContactInfoInput) (*models.ContactInfo, error) {
	info := &models.ContactInfo{}
	applyContactInfoInput(info, input)
	if err := validateContactInfo(info); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, info); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return info, nil
}

// Update 更新联系方式
func (s *ContactInfoService) Update(ctx context.Context, id uint, input ContactInfoInput) (*models.ContactInfo, error) {
	info, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyContactInfoInput(info, input)
	if err := validateContactInfo(info); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, info); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return info, nil
}

// Delete 删除联系方式
func (s *ContactInfoService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *ContactInfoService) invalidate(ctx context.Context) {
	if err := cache.Del(ctx, cache.ContactInfoListKey); err != nil {
		logger.Warnw("contact_info_list_cache_del_failed", "error", err)
	}
}

func validateContactInfo(info *models.ContactInfo) error {
	if err := requireString(info.Email, info.Phone, info.Address); err != nil {
		return err
	}
	email, err := validateEmailAddress(info.Email)
	if err != nil {
		return err
	}
	info.Email = email
	return nil
}

func applyContactInfoInput(info *models.ContactInfo, input ContactInfoInput) {
	applyString(&info.Email, input.Email)
	applyString(&info.Phone, input.Phone)
	applyString(&info.Address, input.Address)
	applyString(&info.MapURL, input.MapURL)
	applyString(&info.SocialMedia, input.SocialMedia)
}
