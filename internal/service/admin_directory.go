package service

import (
	"context"
	"strings"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/models"
	"github.com/ecat-taratra/backend/internal/repository"
)

// AdminDirectory 基于数据库的管理员目录，每次鉴权都按主键回查
type AdminDirectory struct {
	adminRepo repository.AdminRepository
}

// NewAdminDirectory 创建管理员目录
func NewAdminDirectory(adminRepo repository.AdminRepository) *AdminDirectory {
	return &AdminDirectory{adminRepo: adminRepo}
}

// FindByEmail 按邮箱查找登录凭据，未找到返回 (nil, nil)
func (d *AdminDirectory) FindByEmail(ctx context.Context, email string) (*auth.AdminCredential, error) {
	normalized := normalizeEmail(email)
	if normalized == "" {
		return nil, nil
	}
	admin, err := d.adminRepo.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}
	return &auth.AdminCredential{
		Identity:     adminIdentity(admin),
		PasswordHash: admin.PasswordHash,
	}, nil
}

// FindByID 按 ID 查找管理员身份，不经过缓存，已删除的管理员立即失效
func (d *AdminDirectory) FindByID(ctx context.Context, id uint) (*auth.AdminIdentity, error) {
	if id == 0 {
		return nil, nil
	}
	admin, err := d.adminRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, nil
	}
	identity := adminIdentity(admin)
	return &identity, nil
}

func adminIdentity(admin *models.Admin) auth.AdminIdentity {
	return auth.AdminIdentity{
		ID:          admin.ID,
		DisplayName: admin.Name,
		Email:       admin.Email,
		Role:        admin.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
