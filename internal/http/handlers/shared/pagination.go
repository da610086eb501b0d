package shared

import (
	"strconv"

	"github.com/ecat-taratra/backend/internal/http/response"
	"github.com/ecat-taratra/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// ListQuery 列表查询参数
type ListQuery struct {
	Filter   repository.ListFilter
	Page     int
	PageSize int
}

// Pagination 构建响应分页信息
func (q ListQuery) Pagination(total int64) response.Pagination {
	return response.BuildPagination(q.Page, q.PageSize, total)
}

// ParseListQuery 解析 skip/limit 或 page/page_size 分页参数，skip/limit 优先。
func ParseListQuery(c *gin.Context) (ListQuery, bool) {
	_, hasSkip := c.GetQuery("skip")
	_, hasLimit := c.GetQuery("limit")
	if hasSkip || hasLimit {
		skip, errSkip := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(maxPageSize)))
		if errSkip != nil || errLimit != nil || skip < 0 {
			RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return ListQuery{}, false
		}
		_, limit = NormalizePagination(1, limit)
		return ListQuery{
			Filter:   repository.ListFilter{Offset: skip, Limit: limit},
			Page:     skip/limit + 1,
			PageSize: limit,
		}, true
	}

	page, errPage := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, errSize := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if errPage != nil || errSize != nil {
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return ListQuery{}, false
	}
	page, pageSize = NormalizePagination(page, pageSize)
	return ListQuery{
		Filter:   repository.PageFilter(page, pageSize),
		Page:     page,
		PageSize: pageSize,
	}, true
}
