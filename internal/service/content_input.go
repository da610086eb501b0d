package service

import (
	"strings"

	"github.com/ecat-taratra/backend/internal/repository"
)

// applyString 写入可选字符串字段
func applyString(dst *string, value *string) {
	if value == nil {
		return
	}
	*dst = strings.TrimSpace(*value)
}

// requireString 必填字段校验
func requireString(values ...string) error {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return ErrContentInvalid
		}
	}
	return nil
}

// sliceByFilter 对已缓存的完整列表做内存分页
func sliceByFilter[T any](items []T, filter repository.ListFilter) []T {
	if filter.Limit <= 0 {
		return items
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := offset + filter.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
