package converter

import (
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
)

// BookmarkToItem converts a db.Bookmark to the dual-key dto.BookmarkItem.
func BookmarkToItem(b *db.Bookmark) dto.BookmarkItem {
	if b == nil {
		return dto.BookmarkItem{}
	}
	return dto.BookmarkItem{
		ID:          b.ID,
		TitleCN:     b.Title,
		Title:       b.Title,
		URL:         b.URL,
		CategoryCN:  b.Category,
		Category:    b.Category,
		CreatedAtCN: b.CreatedAt,
		CreatedAt:   b.CreatedAt,
		DateAdded:   b.DateAdded,
		Path:        b.Path,
	}
}

// BookmarksToItems converts a slice of db.Bookmark, never returning nil.
func BookmarksToItems(bookmarks []db.Bookmark) []dto.BookmarkItem {
	items := make([]dto.BookmarkItem, len(bookmarks))
	for i := range bookmarks {
		items[i] = BookmarkToItem(&bookmarks[i])
	}
	return items
}

// CategoriesToItems converts aggregated counts.
func CategoriesToItems(counts []db.CategoryCount) []dto.CategoryItem {
	items := make([]dto.CategoryItem, len(counts))
	for i, c := range counts {
		items[i] = dto.CategoryItem{Name: c.Name, Count: c.Count}
	}
	return items
}
