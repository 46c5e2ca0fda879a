package entity

// BookmarkUpdates 书签更新字段，PUT /api/bookmarks 只允许修改这三列
type BookmarkUpdates struct {
	Title    *string
	URL      *string
	Category *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u BookmarkUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.URL != nil {
		updates["url"] = *u.URL
	}
	if u.Category != nil {
		updates["category"] = *u.Category
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u BookmarkUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// AccountUpdates 账户更新字段
type AccountUpdates struct {
	Password *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u AccountUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Password != nil {
		updates["password"] = *u.Password
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u AccountUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
