package models

import (
	"time"
)

// Formation 培训项目
type Formation struct {
	ID              uint      `gorm:"primarykey" json:"id_formation"`               // 主键
	Titre           string    `gorm:"type:varchar(255);not null" json:"titre"`      // 标题
	Description     string    `gorm:"type:text" json:"description"`                 // 简介
	Programme       string    `gorm:"type:text" json:"programme"`                   // 课程安排
	Image           string    `gorm:"type:varchar(500)" json:"image"`               // 封面
	DateInscription time.Time `gorm:"autoCreateTime;index" json:"date_inscription"` // 创建时间
}

// TableName 指定表名
func (Formation) TableName() string {
	return "formations"
}

// Actualite 新闻动态
type Actualite struct {
	ID              uint      `gorm:"primarykey" json:"id_actualite"`                    // 主键
	Titre           string    `gorm:"type:varchar(255);not null" json:"titre"`           // 标题
	Contenu         string    `gorm:"type:text" json:"contenu"`                          // 正文
	Image           string    `gorm:"type:varchar(500)" json:"image"`                    // 配图
	Categorie       string    `gorm:"type:varchar(255);not null;index" json:"categorie"` // 分类
	DatePublication time.Time `gorm:"autoCreateTime;index" json:"date_publication"`      // 发布时间
}

// TableName 指定表名
func (Actualite) TableName() string {
	return "actualites"
}

// Director 历任校长
type Director struct {
	ID        uint       `gorm:"primarykey" json:"id"`                    // 主键
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`  // 姓名
	Title     string     `gorm:"type:varchar(255);not null" json:"title"` // 职务
	Bio       string     `gorm:"type:text" json:"bio"`                    // 简介
	Email     string     `gorm:"type:varchar(255)" json:"email"`          // 邮箱
	PhotoURL  string     `gorm:"type:varchar(500)" json:"photo_url"`      // 照片
	Message   string     `gorm:"type:text" json:"message"`                // 寄语
	StartDate *time.Time `json:"start_date"`                              // 任职开始时间
	UpdatedAt time.Time  `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (Director) TableName() string {
	return "directors"
}

// AboutContent 关于我们
type AboutContent struct {
	ID          uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title       string    `gorm:"type:varchar(255);not null" json:"title"` // 标题
	Description string    `gorm:"type:text" json:"description"`            // 描述
	Mission     string    `gorm:"type:text" json:"mission"`                // 使命
	Vision      string    `gorm:"type:text" json:"vision"`                 // 愿景
	History     string    `gorm:"type:text" json:"history"`                // 历史
	UpdatedAt   time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (AboutContent) TableName() string {
	return "about_content"
}

// ContactInfo 联系方式
type ContactInfo struct {
	ID          uint      `gorm:"primarykey" json:"id"`                    // 主键
	Email       string    `gorm:"type:varchar(255);not null" json:"email"` // 邮箱
	Phone       string    `gorm:"type:varchar(50);not null" json:"phone"`  // 电话
	Address     string    `gorm:"type:text;not null" json:"address"`       // 地址
	MapURL      string    `gorm:"type:varchar(500)" json:"map_url"`        // 地图链接
	SocialMedia string    `gorm:"type:text" json:"social_media"`           // 社交媒体（JSON 字符串或文本）
	UpdatedAt   time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (ContactInfo) TableName() string {
	return "contact_info"
}

// ContactMessage 访客留言
type ContactMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`                        // 主键
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`      // 姓名
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`     // 邮箱
	Subject   string    `gorm:"type:varchar(255);not null" json:"subject"`   // 主题
	Message   string    `gorm:"type:text;not null" json:"message"`           // 内容
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"` // 是否已读
	CreatedAt time.Time `gorm:"index" json:"created_at"`                     // 提交时间
}

// TableName 指定表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}
