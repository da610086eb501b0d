package admin

import (
	"errors"
	"net/http"

	"github.com/ecat-taratra/backend/internal/auth"
	handlershared "github.com/ecat-taratra/backend/internal/http/handlers/shared"
	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应，字段直接位于响应体顶层，不使用统一包装
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	AdminID     uint   `json:"admin_id"`
	Nom         string `json:"nom"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AdminLogin 管理员登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.login_failed", err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		AdminID:     result.Identity.ID,
		Nom:         result.Identity.DisplayName,
		Email:       result.Identity.Email,
		Role:        result.Identity.Role,
	})
}

// GetCurrentAdmin 当前登录管理员
func (h *Handler) GetCurrentAdmin(c *gin.Context) {
	identity, ok := getAdminIdentity(c)
	if !ok {
		return
	}
	response.Success(c, identity)
}

// ChangePassword 修改当前管理员密码
func (h *Handler) ChangePassword(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	err := h.AuthService.ChangePassword(c.Request.Context(), adminID, req.OldPassword, req.NewPassword)
	if err != nil {
		respondMapped(c, err, append([]handlershared.MappedError{
			{Target: auth.ErrInvalidCredentials, Code: response.CodeBadRequest, Key: "error.invalid_credentials"},
			{Target: service.ErrNotFound, Code: response.CodeUnauthorized, Key: "error.unauthenticated"},
		}, handlershared.AdminErrorRules...), response.CodeInternal, "error.admin_update_failed")
		return
	}
	handlershared.RespondMessage(c, "message.password_changed", nil)
}
