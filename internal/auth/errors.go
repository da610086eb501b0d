package auth

import "errors"

var (
	// ErrInvalidCredentials 邮箱或密码错误（两种情况对外完全一致）
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated 令牌缺失、格式错误、签名无效、已过期或主体不存在
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInputTooLong 明文密码超出哈希算法的字节上限
	ErrInputTooLong = errors.New("password exceeds hashing input limit")
	// ErrCorruptCredentialRecord 存储的密码哈希无法解析
	ErrCorruptCredentialRecord = errors.New("corrupt credential record")
	// ErrPasswordMismatch 密码与哈希不匹配
	ErrPasswordMismatch = errors.New("password mismatch")
	// ErrSecretMissing 签名密钥为空
	ErrSecretMissing = errors.New("token secret is empty")
)
