package public

import "github.com/ecat-taratra/backend/internal/provider"

// Handler 公开接口处理器入口
// 说明：该处理器仅用于站点访客可访问的 API。
type Handler struct {
	*provider.Container
}

// New 创建公开接口处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
