package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL 访问令牌有效期（固定值，不可按请求调整）
const AccessTokenTTL = 24 * time.Hour

// AccessClaims 令牌携带的声明
type AccessClaims struct {
	Subject   uint
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// tokenClaims 令牌载荷：sub 为字符串化的管理员 ID，exp 为 Unix 秒
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec HS256 令牌编解码器
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec 创建令牌编解码器，now 为空时使用 time.Now
func NewTokenCodec(secret string, now func() time.Time) (*TokenCodec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretMissing
	}
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{secret: []byte(secret), now: now}, nil
}

// Encode 签发令牌，签发时间取当前时钟
func (c *TokenCodec) Encode(claims AccessClaims, ttl time.Duration) (string, AccessClaims, error) {
	if claims.Subject == 0 {
		return "", AccessClaims{}, errors.New("token subject is empty")
	}
	issuedAt := c.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	payload := tokenClaims{
		Role: claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(claims.Subject), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", AccessClaims{}, fmt.Errorf("sign token: %w", err)
	}

	issued := AccessClaims{
		Subject:   claims.Subject,
		Role:      claims.Role,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
	return signed, issued, nil
}

// Decode 校验签名与有效期并还原声明；任何失败都统一返回 ErrUnauthenticated
func (c *TokenCodec) Decode(tokenString string) (*AccessClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return nil, ErrUnauthenticated
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		// 拒绝签名末位填充位被改写的变体
		jwt.WithStrictDecoding(),
	)
	payload := &tokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, payload, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}

	subject, err := strconv.ParseUint(strings.TrimSpace(payload.Subject), 10, 64)
	if err != nil || subject == 0 {
		return nil, ErrUnauthenticated
	}

	claims := &AccessClaims{
		Subject:   uint(subject),
		Role:      payload.Role,
		ExpiresAt: payload.ExpiresAt.Time,
	}
	if payload.IssuedAt != nil {
		claims.IssuedAt = payload.IssuedAt.Time
	}
	return claims, nil
}
