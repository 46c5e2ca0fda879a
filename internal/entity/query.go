package entity

// BookmarkFilter 书签列表的过滤条件，空字段不参与过滤
type BookmarkFilter struct {
	// Search 对 title、url 做不区分大小写的子串匹配
	Search   string
	Category string
}
