package models

import (
	"time"
)

// 管理员角色
const (
	AdminRoleAdmin = "admin"
)

// Admin 管理员表
type Admin struct {
	ID           uint      `gorm:"primarykey" json:"id_admin"`                            // 主键
	Name         string    `gorm:"type:varchar(100);not null" json:"nom"`                 // 显示名称
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`   // 登录邮箱
	PasswordHash string    `gorm:"type:varchar(60);not null" json:"-"`                    // 密码哈希（不返回给前端）
	Role         string    `gorm:"type:varchar(50);not null;default:'admin'" json:"role"` // 角色（仅携带，不做权限判断）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                            // 更新时间
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
