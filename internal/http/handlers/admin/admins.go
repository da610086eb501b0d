package admin

import (
	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Nom      string `json:"nom" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UpdateAdminRequest 更新管理员请求，未提供的字段保持不变
type UpdateAdminRequest struct {
	Nom      *string `json:"nom"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

// GetAdmins 管理员列表
func (h *Handler) GetAdmins(c *gin.Context) {
	query, ok := handlershared.ParseListQuery(c)
	if !ok {
		return
	}
	admins, total, err := h.AdminService.List(c.Request.Context(), query.Filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, admins, query.Pagination(total))
}

// GetAdmin 管理员详情
func (h *Handler) GetAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	admin, err := h.AdminService.Get(c.Request.Context(), id)
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules, response.CodeInternal, "error.admin_fetch_failed")
		return
	}
	response.Success(c, admin)
}

// CreateAdmin 创建管理员
func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	admin, err := h.AdminService.Create(c.Request.Context(), service.CreateAdminInput{
		Name:     req.Nom,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules, response.CodeInternal, "error.admin_create_failed")
		return
	}
	response.Created(c, admin)
}

// UpdateAdmin 更新管理员
func (h *Handler) UpdateAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	admin, err := h.AdminService.Update(c.Request.Context(), id, service.UpdateAdminInput{
		Name:     req.Nom,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules, response.CodeInternal, "error.admin_update_failed")
		return
	}
	response.Success(c, admin)
}

// DeleteAdmin 删除管理员
func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.AdminService.Delete(c.Request.Context(), id); err != nil {
		respondMapped(c, err, handlershared.AdminErrorRules, response.CodeInternal, "error.admin_delete_failed")
		return
	}
	handlershared.RespondMessage(c, "message.deleted", nil)
}
