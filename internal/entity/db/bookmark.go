package db

import "time"

// Bookmark 书签记录。
//
// 写入采用按主键整行替换的语义：同一 ID 的后一次写入会覆盖全部列，
// 未携带的列（Subcategory、Icon）回到空值。
type Bookmark struct {
	ID          string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(512);not null;index:idx_bookmarks_title" json:"title"`
	URL         string    `gorm:"column:url;type:varchar(768);not null;index:idx_bookmarks_url" json:"url"`
	Category    string    `gorm:"column:category;type:varchar(255);index:idx_bookmarks_category" json:"category"`
	Subcategory string    `gorm:"column:subcategory;type:varchar(255)" json:"subcategory"`
	Icon        string    `gorm:"column:icon;type:text" json:"icon"`
	Path        string    `gorm:"column:path;type:text" json:"path"`
	DateAdded   int64     `gorm:"column:date_added" json:"date_added"`
	CreatedAt   time.Time `gorm:"index:idx_bookmarks_created_at" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名。
func (Bookmark) TableName() string {
	return "bookmarks"
}

// CategoryCount 分类聚合结果，不落表。
type CategoryCount struct {
	Name  string `gorm:"column:name" json:"name"`
	Count int64  `gorm:"column:count" json:"count"`
}

// TableCount 单表行数，不落表。
type TableCount struct {
	Name  string
	Count int64
}
