package sql

import (
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/common"
	"bookmarks/internal/entity/db"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 整行替换时覆盖的列，id 之外的全部列
var bookmarkReplaceColumns = []string{
	"title", "url", "category", "subcategory", "icon", "path", "date_added", "created_at", "updated_at",
}

// UpsertBookmark 按 id 插入或整行替换
func (r *GormRepository) UpsertBookmark(ctx context.Context, bookmark *db.Bookmark) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if bookmark == nil || bookmark.ID == "" {
		return fmt.Errorf("bookmark id is required")
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(bookmarkReplaceColumns),
	}).Create(bookmark).Error
}

// DeleteBookmarksByIDOrURL 删除 id 或 url 匹配的书签，返回删除条数。
// 空字符串的条件不参与匹配，两者都为空时不删除任何行。
func (r *GormRepository) DeleteBookmarksByIDOrURL(ctx context.Context, id, url string) (int64, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if id != "" {
		conds = append(conds, "id = ?")
		args = append(args, id)
	}
	if url != "" {
		conds = append(conds, "url = ?")
		args = append(args, url)
	}
	if len(conds) == 0 {
		return 0, nil
	}
	res, err := r.Exec(ctx, "DELETE FROM bookmarks WHERE "+strings.Join(conds, " OR "), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

// GetBookmark 按 id 查询
func (r *GormRepository) GetBookmark(ctx context.Context, id string) (*db.Bookmark, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	var bookmark db.Bookmark
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookmark).Error; err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// UpdateBookmark 修改部分列，记录不存在时返回 gorm.ErrRecordNotFound
func (r *GormRepository) UpdateBookmark(ctx context.Context, id string, updates entity.BookmarkUpdates) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if updates.IsEmpty() {
		return fmt.Errorf("no updates provided")
	}
	result := r.db.WithContext(ctx).Model(&db.Bookmark{}).Where("id = ?", id).Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// MySQL 在值未变化时返回 0，需要再确认记录是否存在
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Bookmark{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBookmark 按 id 删除，记录不存在时返回 gorm.ErrRecordNotFound
func (r *GormRepository) DeleteBookmark(ctx context.Context, id string) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListBookmarks 分页查询，按创建时间倒序，id 升序兜底
func (r *GormRepository) ListBookmarks(ctx context.Context, filter entity.BookmarkFilter, page common.Page) ([]db.Bookmark, int64, error) {
	if r == nil || r.db == nil {
		return nil, 0, ErrNotConfigured
	}
	page = page.Normalize()

	query := r.db.WithContext(ctx).Model(&db.Bookmark{})
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(url) LIKE ?)", pattern, pattern)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	bookmarks := make([]db.Bookmark, 0, page.Limit)
	if err := query.
		Order("created_at DESC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&bookmarks).Error; err != nil {
		return nil, 0, err
	}
	return bookmarks, total, nil
}

// AllBookmarks 全部书签，顺序与列表一致
func (r *GormRepository) AllBookmarks(ctx context.Context) ([]db.Bookmark, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	var bookmarks []db.Bookmark
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// CountBookmarks 书签总数
func (r *GormRepository) CountBookmarks(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, ErrNotConfigured
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Bookmark{}).Count(&count).Error
	return count, err
}

// CountBookmarksSince 指定时间之后创建的书签数
func (r *GormRepository) CountBookmarksSince(ctx context.Context, since time.Time) (int64, error) {
	if r == nil || r.db == nil {
		return 0, ErrNotConfigured
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Bookmark{}).Where("created_at > ?", since).Count(&count).Error
	return count, err
}
