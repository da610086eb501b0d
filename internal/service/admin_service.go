package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// AdminService 管理员管理服务
type AdminService struct {
	adminRepo repository.AdminRepository
	hasher    *auth.PasswordHasher
}

// NewAdminService 创建管理员管理服务
func NewAdminService(adminRepo repository.AdminRepository, hasher *auth.PasswordHasher) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		hasher:    hasher,
	}
}

// CreateAdminInput 创建管理员输入
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateAdminInput 更新管理员输入，nil 表示不修改
type UpdateAdminInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}

// List 管理员列表
func (s *AdminService) List(ctx context.Context, filter repository.ListFilter) ([]models.Admin, int64, error) {
	return s.adminRepo.List(ctx, filter)
}

// Get 获取管理员
func (s *AdminService) Get(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// Create 创建管理员
func (s *AdminService) Create(ctx context.Context, input CreateAdminInput) (*models.Admin, error) {
	email, err := validateEmailAddress(input.Email)
	if err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	existing, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminEmailExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         normalizeAdminRole(input.Role),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	logger.Infow("admin_created", "admin_id", admin.ID, "email", admin.Email)
	return admin, nil
}

// Update 更新管理员资料；密码通过 ReplacePasswordHash 单独写入
func (s *AdminService) Update(ctx context.Context, id uint, input UpdateAdminInput) (*models.Admin, error) {
	admin, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	update := repository.AdminProfileUpdate{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		update.Name = &name
	}
	if input.Email != nil {
		email, err := validateEmailAddress(*input.Email)
		if err != nil {
			return nil, err
		}
		if email != admin.Email {
			other, err := s.adminRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != admin.ID {
				return nil, ErrAdminEmailExists
			}
		}
		update.Email = &email
	}
	if input.Role != nil {
		role := normalizeAdminRole(*input.Role)
		update.Role = &role
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrPasswordRequired
		}
		if len(*input.Password) > auth.MaxPasswordBytes {
			return nil, auth.ErrInputTooLong
		}
	}

	if err := s.adminRepo.UpdateProfile(ctx, id, update); err != nil {
		return nil, err
	}
	if input.Password != nil {
		if err := s.ReplacePasswordHash(ctx, id, *input.Password); err != nil {
			return nil, err
		}
	}
	logger.Infow("admin_updated", "admin_id", id)
	return s.Get(ctx, id)
}

// ReplacePasswordHash 用新明文的哈希替换管理员密码
func (s *AdminService) ReplacePasswordHash(ctx context.Context, id uint, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	return s.adminRepo.UpdatePasswordHash(ctx, id, hash)
}

// Delete 删除管理员，拒绝删除最后一个管理员
func (s *AdminService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}
	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infow("admin_deleted", "admin_id", id)
	return nil
}

func validateEmailAddress(raw string) (string, error) {
	email := normalizeEmail(raw)
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func normalizeAdminRole(raw string) string {
	role := strings.TrimSpace(raw)
	if role == "" {
		return models.AdminRoleAdmin
	}
	return role
}
