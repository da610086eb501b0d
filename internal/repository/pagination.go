package repository

import "gorm.io/gorm"

// applyPagination 应用偏移量与条数，统一处理非法参数。
func applyPagination(query *gorm.DB, filter ListFilter) *gorm.DB {
	if query == nil || filter.Limit <= 0 {
		return query
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	return query.Limit(filter.Limit).Offset(offset)
}
