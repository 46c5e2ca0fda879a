package service

import (
	"bookmarks/internal/entity/dto"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSyncAction(t *testing.T) {
	for _, raw := range []string{"fullSync", "create", "update", "remove", "move"} {
		action, err := ParseSyncAction(raw)
		require.NoError(t, err)
		assert.Equal(t, SyncAction(raw), action)
	}

	for _, raw := range []string{"", "FullSync", "delete", "sync"} {
		_, err := ParseSyncAction(raw)
		requireKind(t, err, KindValidation)
	}
}

func TestExtractCategory(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "多级路径", path: "工具/设计/图标", want: "工具"},
		{name: "前导斜杠", path: "/书签栏/开发", want: "书签栏"},
		{name: "空白段被跳过", path: "  /开发", want: "开发"},
		{name: "保留原始空白", path: " 开发 /前端", want: " 开发 "},
		{name: "单段", path: "阅读", want: "阅读"},
		{name: "空路径", path: "", want: ""},
		{name: "只有分隔符", path: "///", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCategory(tt.path))
		})
	}
}

func TestGenerateBookmarkID(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	prefix := strconv.FormatInt(now.UnixMilli(), 36)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := GenerateBookmarkID(now)
		assert.True(t, strings.HasPrefix(id, prefix), id)
		assert.Greater(t, len(id), len(prefix))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSyncCreateThenList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)

	added := float64(1700000000123)
	resp, err := svc.Sync(ctx, "create", mustJSON(t, dto.BookmarkPayload{
		ID: "bm-1", Title: "Figma", URL: "https://figma.com", Path: "工具/设计/图标", DateAdded: &added,
	}))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "create", resp.Action)
	assert.Equal(t, "同步成功", resp.Message)
	assert.Equal(t, dto.UpsertResult{ID: "bm-1", Action: "upserted"}, resp.Result)

	list, err := NewBookmarkService(repo).List(ctx, dto.BookmarkQuery{})
	require.NoError(t, err)
	require.Len(t, list.Bookmarks, 1)
	item := list.Bookmarks[0]
	assert.Equal(t, "bm-1", item.ID)
	assert.Equal(t, "Figma", item.Title)
	assert.Equal(t, "工具", item.Category)
	assert.Equal(t, item.Category, item.CategoryCN)
	assert.Equal(t, "工具/设计/图标", item.Path)
	assert.EqualValues(t, 1700000000123, item.DateAdded)
}

func TestSyncGeneratesIDAndDateAdded(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)
	fixed := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.Create(ctx, dto.BookmarkPayload{URL: "https://example.com"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.ID, strconv.FormatInt(fixed.UnixMilli(), 36)))

	got, err := repo.GetBookmark(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, fixed.UnixMilli(), got.DateAdded)
	assert.Empty(t, got.Title)
	assert.Empty(t, got.Category)
}

func TestSyncMissingURL(t *testing.T) {
	svc := NewSyncService(newTestRepo(t, true))
	_, err := svc.Sync(context.Background(), "update", mustJSON(t, map[string]string{"id": "x"}))
	appErr := requireKind(t, err, KindValidation)
	assert.Equal(t, "书签URL不能为空", appErr.Message)
}

func TestSyncFullSyncCountsFailures(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)

	items := []map[string]any{
		{"id": "1", "title": "A", "url": "https://a"},
		{"id": "2", "title": "B", "url": "https://b"},
		{"id": "3", "title": "C"},
		{"id": "4", "title": "D", "url": "https://d"},
		{"id": "5", "title": "E", "url": "https://e"},
	}
	resp, err := svc.Sync(ctx, "fullSync", mustJSON(t, items))
	require.NoError(t, err)
	assert.Equal(t, dto.FullSyncResult{Total: 5, Processed: 4, Errors: 1}, resp.Result)

	total, err := repo.CountBookmarks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestSyncFullSyncMalformedItem(t *testing.T) {
	svc := NewSyncService(newTestRepo(t, true))
	raw := json.RawMessage(`[{"id":"1","url":"https://a"}, "oops", {"id":"2","url":"https://b","dateAdded":"x"}]`)
	resp, err := svc.Sync(context.Background(), "fullSync", raw)
	require.NoError(t, err)
	assert.Equal(t, dto.FullSyncResult{Total: 3, Processed: 1, Errors: 2}, resp.Result)
}

func TestSyncFullSyncRequiresArray(t *testing.T) {
	svc := NewSyncService(newTestRepo(t, true))
	for _, raw := range []string{`{"id":"1"}`, `null`, `"text"`, ``} {
		_, err := svc.Sync(context.Background(), "fullSync", json.RawMessage(raw))
		appErr := requireKind(t, err, KindValidation)
		assert.Equal(t, "书签数据必须是数组格式", appErr.Message)
	}
}

func TestSyncReplaceSemantics(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)

	_, err := svc.Sync(ctx, "create", mustJSON(t, dto.BookmarkPayload{ID: "m", URL: "https://m", Path: "旧目录/子目录"}))
	require.NoError(t, err)
	_, err = svc.Sync(ctx, "move", mustJSON(t, dto.BookmarkPayload{ID: "m", Title: "M", URL: "https://m", Path: "新目录"}))
	require.NoError(t, err)

	got, err := repo.GetBookmark(ctx, "m")
	require.NoError(t, err)
	assert.Equal(t, "新目录", got.Category)
	assert.Equal(t, "M", got.Title)

	total, err := repo.CountBookmarks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSyncRemove(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)
	for _, p := range []dto.BookmarkPayload{
		{ID: "1", URL: "https://one"},
		{ID: "2", URL: "https://two"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	resp, err := svc.Sync(ctx, "remove", mustJSON(t, map[string]string{"url": "https://two"}))
	require.NoError(t, err)
	assert.Equal(t, dto.RemoveResult{Deleted: 1}, resp.Result)

	resp, err = svc.Sync(ctx, "remove", mustJSON(t, map[string]string{"id": "missing"}))
	require.NoError(t, err)
	assert.Equal(t, dto.RemoveResult{Deleted: 0}, resp.Result)

	total, err := repo.CountBookmarks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSyncRemoveByIDKeepsEmptyURLRows(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, true)
	svc := NewSyncService(repo)
	for _, p := range []dto.BookmarkPayload{
		{ID: "keep", URL: "https://keep"},
		{ID: "target", URL: "https://target"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}
	// PUT 不带 url 时写入空字符串
	require.NoError(t, NewBookmarkService(repo).Update(ctx, dto.BookmarkUpdateRequest{ID: "keep", Title: "renamed"}))

	resp, err := svc.Sync(ctx, "remove", mustJSON(t, map[string]string{"id": "target"}))
	require.NoError(t, err)
	assert.Equal(t, dto.RemoveResult{Deleted: 1}, resp.Result)

	kept, err := repo.GetBookmark(ctx, "keep")
	require.NoError(t, err)
	assert.Empty(t, kept.URL)
	assert.Equal(t, "renamed", kept.Title)
}

func TestSyncUnknownAction(t *testing.T) {
	svc := NewSyncService(newTestRepo(t, true))
	_, err := svc.Sync(context.Background(), "rename", json.RawMessage(`{}`))
	appErr := requireKind(t, err, KindValidation)
	assert.Equal(t, "不支持的操作类型", appErr.Message)
}

func TestSyncStorageFailure(t *testing.T) {
	// 未建表时写入失败，应归类为存储错误
	svc := NewSyncService(newTestRepo(t, false))
	_, err := svc.Create(context.Background(), dto.BookmarkPayload{URL: "https://x"})
	requireKind(t, err, KindStorage)
}
