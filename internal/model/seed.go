package model

import (
	"bookmarks/internal/entity/db"
	"context"
	"fmt"
	"time"
)

// SeedSampleBookmarks 书签表为空时写入示例书签，返回写入条数。
// 已有数据时不做任何修改。
func SeedSampleBookmarks(ctx context.Context, repo Repository) (int, error) {
	if repo == nil {
		return 0, nil
	}

	count, err := repo.CountBookmarks(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seeds := buildSampleBookmarks(time.Now().UTC())
	for i := range seeds {
		if err := repo.UpsertBookmark(ctx, &seeds[i]); err != nil {
			return i, fmt.Errorf("failed to create sample bookmark %s: %w", seeds[i].ID, err)
		}
	}
	return len(seeds), nil
}

func buildSampleBookmarks(now time.Time) []db.Bookmark {
	samples := []db.Bookmark{
		{ID: "sample_1", Title: "Google", URL: "https://www.google.com", Category: "搜索引擎", Path: "搜索引擎/Google"},
		{ID: "sample_2", Title: "GitHub", URL: "https://github.com", Category: "开发工具", Path: "开发工具/代码托管"},
		{ID: "sample_3", Title: "Stack Overflow", URL: "https://stackoverflow.com", Category: "开发工具", Path: "开发工具/问答社区"},
		{ID: "sample_4", Title: "MDN Web Docs", URL: "https://developer.mozilla.org", Category: "学习资源", Path: "学习资源/Web开发"},
		{ID: "sample_5", Title: "Cloudflare", URL: "https://cloudflare.com", Category: "云服务", Path: "云服务/CDN"},
	}
	for i := range samples {
		samples[i].DateAdded = now.UnixMilli()
		samples[i].CreatedAt = now
		samples[i].UpdatedAt = now
	}
	return samples
}
