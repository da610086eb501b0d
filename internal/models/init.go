package models

import (
	"errors"
	"strings"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/logger"
)

const (
	DefaultAdminName     = "Administrateur Principal"
	DefaultAdminEmail    = "admin@ecat-taratra.mg"
	DefaultAdminPassword = "admin123"
)

// ErrDefaultAdminPasswordRequired release 模式下未显式配置默认管理员密码
var ErrDefaultAdminPasswordRequired = errors.New("default admin password must be configured explicitly")

// DefaultAdminOptions 默认管理员初始化参数
type DefaultAdminOptions struct {
	Name            string
	Email           string
	Password        string
	RequirePassword bool // release 模式要求显式密码
}

// InitDefaultAdmin 在管理员表为空时创建默认管理员账号
func InitDefaultAdmin(options DefaultAdminOptions, hasher *auth.PasswordHasher) error {
	var count int64
	if err := DB.Model(&Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	name := strings.TrimSpace(options.Name)
	if name == "" {
		name = DefaultAdminName
	}
	email := strings.ToLower(strings.TrimSpace(options.Email))
	if email == "" {
		email = DefaultAdminEmail
	}
	password := options.Password
	if password == "" {
		if options.RequirePassword {
			return ErrDefaultAdminPasswordRequired
		}
		password = DefaultAdminPassword
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         AdminRoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == DefaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}

	return nil
}
