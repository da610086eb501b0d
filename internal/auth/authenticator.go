package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecat-taratra/backend/internal/logger"
)

// AdminIdentity 管理员身份快照（只读）
type AdminIdentity struct {
	ID          uint   `json:"id_admin"`
	DisplayName string `json:"nom"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// AdminCredential 登录校验所需的管理员记录
type AdminCredential struct {
	Identity     AdminIdentity
	PasswordHash string
}

// AdminDirectory 管理员目录，未找到时返回 (nil, nil)，存储故障返回 error
type AdminDirectory interface {
	FindByEmail(ctx context.Context, email string) (*AdminCredential, error)
	FindByID(ctx context.Context, id uint) (*AdminIdentity, error)
}

// LoginResult 登录成功结果
type LoginResult struct {
	Token     string
	Identity  AdminIdentity
	ExpiresAt time.Time
}

// Principal 已认证的请求主体
type Principal struct {
	Identity AdminIdentity
	Claims   AccessClaims
}

// Authenticator 负责登录与请求鉴权
type Authenticator struct {
	directory AdminDirectory
	hasher    *PasswordHasher
	codec     *TokenCodec
}

// NewAuthenticator 创建鉴权器
func NewAuthenticator(directory AdminDirectory, hasher *PasswordHasher, codec *TokenCodec) *Authenticator {
	return &Authenticator{
		directory: directory,
		hasher:    hasher,
		codec:     codec,
	}
}

// Login 校验邮箱与密码并签发令牌
func (a *Authenticator) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	record, err := a.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup admin by email: %w", err)
	}
	if record == nil {
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Check(password, record.PasswordHash); err != nil {
		if errors.Is(err, ErrCorruptCredentialRecord) {
			logger.Warnw("admin_login_corrupt_hash", "admin_id", record.Identity.ID)
		}
		return nil, ErrInvalidCredentials
	}

	token, issued, err := a.codec.Encode(AccessClaims{
		Subject: record.Identity.ID,
		Role:    record.Identity.Role,
	}, AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		Identity:  record.Identity,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Authenticate 根据 Authorization 头解析当前管理员
func (a *Authenticator) Authenticate(ctx context.Context, authorization string) (*Principal, error) {
	tokenString, ok := ParseBearer(authorization)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return a.AuthenticateToken(ctx, tokenString)
}

// AuthenticateToken 校验裸令牌并解析管理员身份
func (a *Authenticator) AuthenticateToken(ctx context.Context, tokenString string) (*Principal, error) {
	claims, err := a.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	identity, err := a.directory.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("lookup admin by id: %w", err)
	}
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	return &Principal{Identity: *identity, Claims: *claims}, nil
}

// ParseBearer 从 Authorization 头提取 Bearer 令牌
func ParseBearer(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
