package cache

import "time"

const contentListCacheTTL = 30 * time.Minute

// 公开内容列表缓存 key
const (
	AboutListKey       = "content:about:list"
	ContactInfoListKey = "content:contact_info:list"
)

// ContentListTTL 公开内容列表缓存时长
func ContentListTTL() time.Duration {
	return contentListCacheTTL
}
