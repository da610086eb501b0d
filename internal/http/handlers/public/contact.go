package public

import (
	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/i18n"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactMessageRequest 访客留言请求
type ContactMessageRequest struct {
	Name           string                              `json:"name" binding:"required"`
	Email          string                              `json:"email" binding:"required"`
	Subject        string                              `json:"subject" binding:"required"`
	Message        string                              `json:"message" binding:"required"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

var contactMessageErrorRules = []handlershared.MappedError{
	{Target: service.ErrCaptchaRequired, Code: response.CodeBadRequest, Key: "error.captcha_required"},
	{Target: service.ErrCaptchaInvalid, Code: response.CodeBadRequest, Key: "error.captcha_invalid"},
	{Target: service.ErrContentInvalid, Code: response.CodeBadRequest, Key: "error.content_invalid"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
}

// CreateContactMessage 提交访客留言
func (h *Handler) CreateContactMessage(c *gin.Context) {
	var req ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if h.CaptchaService != nil {
		if err := h.CaptchaService.Verify(req.CaptchaPayload.ToServicePayload()); err != nil {
			respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.save_failed")
			return
		}
	}

	locale := i18n.ResolveLocale(c)
	message, err := h.ContactMessageService.Create(c.Request.Context(), service.ContactMessageInput{
		Name:    &req.Name,
		Email:   &req.Email,
		Subject: &req.Subject,
		Message: &req.Message,
	}, locale)
	if err != nil {
		respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.save_failed")
		return
	}

	response.CreatedWithMsg(c, i18n.T(locale, "message.contact_message_received"), message)
}
