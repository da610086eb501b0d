package auth

import (
	"errors"

	"github.com/ecat-taratra/backend/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes bcrypt 可处理的最大明文字节数
const MaxPasswordBytes = 72

// PasswordHasher bcrypt 密码哈希器
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher 创建密码哈希器，cost 非法时使用默认值
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash 生成带随机盐的哈希，结果自带算法标识与 cost
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrInputTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrInputTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// Check 校验明文与哈希，区分不匹配与存储数据损坏
func (h *PasswordHasher) Check(plaintext, hashValue string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashValue), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		// 超长明文不可能与任何已存哈希匹配
		return ErrPasswordMismatch
	default:
		return ErrCorruptCredentialRecord
	}
}

// Verify 校验密码，任何失败均返回 false；哈希损坏时记录日志但不向上传播
func (h *PasswordHasher) Verify(plaintext, hashValue string) bool {
	err := h.Check(plaintext, hashValue)
	if errors.Is(err, ErrCorruptCredentialRecord) {
		logger.Warnw("password_hash_unrecognized", "hash_length", len(hashValue))
	}
	return err == nil
}
