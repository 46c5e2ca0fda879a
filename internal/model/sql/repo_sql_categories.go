package sql

import (
	"bookmarks/internal/entity/db"
	"context"
)

const categoryCountsSQL = `SELECT CASE WHEN category IS NULL OR category = '' THEN ? ELSE category END AS name, COUNT(*) AS count
FROM bookmarks
GROUP BY name
ORDER BY count DESC, name ASC`

// CategoryCounts 按分类聚合，空分类归入 defaultName
func (r *GormRepository) CategoryCounts(ctx context.Context, defaultName string) ([]db.CategoryCount, error) {
	rows, err := r.Query(ctx, categoryCountsSQL, defaultName)
	if err != nil {
		return nil, err
	}
	counts := make([]db.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, db.CategoryCount{
			Name:  row.String("name"),
			Count: row.Int64("count"),
		})
	}
	return counts, nil
}

// NamedCategoryCounts 只统计有分类的书签
func (r *GormRepository) NamedCategoryCounts(ctx context.Context) ([]db.CategoryCount, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	var counts []db.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&db.Bookmark{}).
		Select("category AS name, COUNT(*) AS count").
		Where("category IS NOT NULL AND category <> ''").
		Group("category").
		Order("count DESC").
		Order("name ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
