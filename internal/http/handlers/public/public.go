package public

import (
	"github.com/ecat-taratra/backend/internal/constants"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// GetConfig 站点前端所需的公开配置
func (h *Handler) GetConfig(c *gin.Context) {
	captchaEnabled := h.CaptchaService != nil && h.CaptchaService.Enabled()
	response.Success(c, gin.H{
		"app_name":       constants.AppName,
		"languages":      []string{i18n.LocaleFR, i18n.LocaleEN},
		"default_locale": i18n.DefaultLocale,
		"captcha": gin.H{
			"enabled": captchaEnabled,
		},
	})
}
