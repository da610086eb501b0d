package repository

// ListFilter 通用列表分页条件（Limit <= 0 表示不分页）
type ListFilter struct {
	Offset int
	Limit  int
}

// PageFilter 按页码构建分页条件
func PageFilter(page, pageSize int) ListFilter {
	if page < 1 {
		page = 1
	}
	return ListFilter{Offset: (page - 1) * pageSize, Limit: pageSize}
}

// ActualiteListFilter 查询新闻列表的过滤条件
type ActualiteListFilter struct {
	ListFilter
	Categorie string
	Search    string
}

// ContactMessageListFilter 查询留言列表的过滤条件
type ContactMessageListFilter struct {
	ListFilter
	IsRead *bool
	Search string
}
