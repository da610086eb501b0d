package admin

import (
	"strconv"
	"strings"

	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/repository"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactMessageUpdateRequest 留言更新请求
type ContactMessageUpdateRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	IsRead  *bool   `json:"is_read"`
}

var contactMessageErrorRules = handlershared.ContentErrorRules("error.contact_message_not_found")

// GetContactMessages 留言列表
func (h *Handler) GetContactMessages(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	filter := repository.ContactMessageListFilter{
		ListFilter: query.Filter,
		Search:     strings.TrimSpace(c.Query("search")),
	}
	if raw := strings.TrimSpace(c.Query("is_read")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.IsRead = &parsed
	}

	messages, total, err := h.ContactMessageService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, messages, query.Pagination(total))
}

// GetContactMessage 留言详情
func (h *Handler) GetContactMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	message, err := h.ContactMessageService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.fetch_failed")
		return
	}
	response.Success(c, message)
}

// UpdateContactMessage 更新留言
func (h *Handler) UpdateContactMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ContactMessageUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	message, err := h.ContactMessageService.Update(c.Request.Context(), id, service.ContactMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  req.IsRead,
	})
	if err != nil {
		respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, message)
}

// MarkContactMessageRead 标记留言已读
func (h *Handler) MarkContactMessageRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	message, err := h.ContactMessageService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.save_failed")
		return
	}
	response.Success(c, message)
}

// DeleteContactMessage 删除留言
func (h *Handler) DeleteContactMessage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ContactMessageService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, contactMessageErrorRules, response.CodeInternal, "error.delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}
