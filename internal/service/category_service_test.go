package service

import (
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	for i, category := range []string{"A", "A", "B", "", "B"} {
		require.NoError(t, repo.UpsertBookmark(ctx, &db.Bookmark{
			ID: fmt.Sprint(i), URL: fmt.Sprintf("https://%d", i), Category: category, CreatedAt: time.Now().UTC(),
		}))
	}

	resp, err := NewCategoryService(repo).List(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []dto.CategoryItem{
		{Name: "A", Count: 2},
		{Name: "B", Count: 2},
		{Name: "其他", Count: 1},
	}, resp.Categories)
	assert.EqualValues(t, 5, resp.Total)
	assert.Equal(t, "找到 3 个分类，共 5 个书签", resp.Message)
}

func TestCategoryListEmpty(t *testing.T) {
	resp, err := NewCategoryService(newTestRepo(t, true)).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.Categories)
	assert.NotNil(t, resp.Categories)
	assert.Equal(t, "找到 0 个分类，共 0 个书签", resp.Message)
}

func TestSortCategoryCounts(t *testing.T) {
	counts := []db.CategoryCount{
		{Name: "b", Count: 1},
		{Name: "其他", Count: 3},
		{Name: "Z", Count: 3},
		{Name: "a", Count: 1},
	}
	sortCategoryCounts(counts)
	assert.Equal(t, []db.CategoryCount{
		{Name: "Z", Count: 3},
		{Name: "其他", Count: 3},
		{Name: "a", Count: 1},
		{Name: "b", Count: 1},
	}, counts)
}
