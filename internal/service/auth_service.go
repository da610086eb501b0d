package service

import (
	"context"
	"errors"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/repository"
)

// AuthService 认证服务
type AuthService struct {
	authenticator *auth.Authenticator
	hasher        *auth.PasswordHasher
	adminRepo     repository.AdminRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(authenticator *auth.Authenticator, hasher *auth.PasswordHasher, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		hasher:        hasher,
		adminRepo:     adminRepo,
	}
}

// Login 管理员登录
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.LoginResult, error) {
	result, err := s.authenticator.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	logger.Infow("admin_login", "admin_id", result.Identity.ID)
	return result, nil
}

// ChangePassword 当前管理员修改自己的密码
func (s *AuthService) ChangePassword(ctx context.Context, adminID uint, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if err := s.hasher.Check(oldPassword, admin.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrCorruptCredentialRecord) {
			logger.Warnw("admin_change_password_corrupt_hash", "admin_id", adminID)
		}
		return auth.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.adminRepo.UpdatePasswordHash(ctx, adminID, hash); err != nil {
		return err
	}
	logger.Infow("admin_password_changed", "admin_id", adminID)
	return nil
}
