package shared

import (
	"errors"

	"github.com/ecat-taratra/backend/internal/auth"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// RespondWithMappedError 按规则映射业务错误，未命中时返回兜底错误并记录原始错误。
func RespondWithMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.Target) {
			RespondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}

// ContentErrorRules 站点内容通用错误映射
func ContentErrorRules(notFoundKey string) []MappedError {
	return []MappedError{
		{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: notFoundKey},
		{Target: service.ErrContentInvalid, Code: response.CodeBadRequest, Key: "error.content_invalid"},
		{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	}
}

// AdminErrorRules 管理员管理错误映射
var AdminErrorRules = []MappedError{
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.admin_not_found"},
	{Target: service.ErrAdminEmailExists, Code: response.CodeBadRequest, Key: "error.admin_email_exists"},
	{Target: service.ErrLastAdmin, Code: response.CodeBadRequest, Key: "error.admin_last"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrPasswordRequired, Code: response.CodeBadRequest, Key: "error.password_required"},
	{Target: auth.ErrInputTooLong, Code: response.CodeBadRequest, Key: "error.password_too_long"},
}
