package sql

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/common"
	"bookmarks/internal/entity/db"
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func newTestRepo(t *testing.T) *GormRepository {
	t.Helper()
	repo, err := NewGormRepository(openTestDB(t), AdminSeed{})
	require.NoError(t, err)
	require.NoError(t, repo.InitializeTables(context.Background()))
	return repo
}

func insertBookmark(t *testing.T, repo *GormRepository, id, title, url, category string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.UpsertBookmark(context.Background(), &db.Bookmark{
		ID:        id,
		Title:     title,
		URL:       url,
		Category:  category,
		DateAdded: createdAt.UnixMilli(),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}))
}

func TestNewGormRepositoryRequiresDB(t *testing.T) {
	_, err := NewGormRepository(nil, AdminSeed{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestInitializeTables(t *testing.T) {
	ctx := context.Background()
	repo, err := NewGormRepository(openTestDB(t), AdminSeed{Username: "root", Password: "secret1"})
	require.NoError(t, err)

	missing, err := repo.MissingTables(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, ManagedTables, missing)

	require.NoError(t, repo.InitializeTables(ctx))
	require.NoError(t, repo.InitializeTables(ctx))

	missing, err = repo.MissingTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, missing)

	account, err := repo.GetAccountByUsername(ctx, "root")
	require.NoError(t, err)
	assert.True(t, auth.IsHashed(account.Password))

	created, err := repo.SeedAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created, "admin should only be seeded once")

	var count int64
	require.NoError(t, repo.db.Model(&db.Account{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpsertBookmarkReplacesWholeRow(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpsertBookmark(ctx, &db.Bookmark{
		ID: "b1", Title: "Old", URL: "https://old.example", Category: "工具",
		Subcategory: "设计", Icon: "icon.png", Path: "工具/设计", CreatedAt: first, UpdatedAt: first,
	}))

	second := first.Add(time.Hour)
	require.NoError(t, repo.UpsertBookmark(ctx, &db.Bookmark{
		ID: "b1", Title: "New", URL: "https://new.example", Category: "开发",
		Path: "开发", CreatedAt: second, UpdatedAt: second,
	}))

	got, err := repo.GetBookmark(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "https://new.example", got.URL)
	assert.Equal(t, "开发", got.Category)
	assert.Empty(t, got.Subcategory)
	assert.Empty(t, got.Icon)
	assert.True(t, got.CreatedAt.Equal(second), "created_at should be replaced, got %v", got.CreatedAt)

	total, err := repo.CountBookmarks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestDeleteBookmarksByIDOrURL(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()
	insertBookmark(t, repo, "a", "A", "https://a.example", "", now)
	insertBookmark(t, repo, "b", "B", "https://b.example", "", now)
	insertBookmark(t, repo, "c", "C", "https://c.example", "", now)

	deleted, err := repo.DeleteBookmarksByIDOrURL(ctx, "a", "https://b.example")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	deleted, err = repo.DeleteBookmarksByIDOrURL(ctx, "missing", "https://missing.example")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	total, err := repo.CountBookmarks(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestDeleteBookmarksIgnoresEmptyFields(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()
	insertBookmark(t, repo, "no-url", "无链接", "", "", now)
	insertBookmark(t, repo, "target", "T", "https://target.example", "", now)

	deleted, err := repo.DeleteBookmarksByIDOrURL(ctx, "target", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = repo.DeleteBookmarksByIDOrURL(ctx, "", "")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = repo.GetBookmark(ctx, "no-url")
	require.NoError(t, err, "row with empty url must survive")
}

func TestGetAccountByUsernameIsExact(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	require.NoError(t, repo.InitializeTables(ctx))

	_, err := repo.GetAccountByUsername(ctx, "admin")
	require.NoError(t, err)
	_, err = repo.GetAccountByUsername(ctx, " admin")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListBookmarksPagination(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		insertBookmark(t, repo, fmt.Sprintf("id-%03d", i), fmt.Sprintf("Title %d", i),
			fmt.Sprintf("https://example.com/%d", i), "", base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.ListBookmarks(ctx, entity.BookmarkFilter{}, common.Page{Page: 1, Limit: 50})
	require.NoError(t, err)
	assert.EqualValues(t, 120, total)
	require.Len(t, page1, 50)
	assert.Equal(t, "id-119", page1[0].ID, "newest first")

	page3, _, err := repo.ListBookmarks(ctx, entity.BookmarkFilter{}, common.Page{Page: 3, Limit: 50})
	require.NoError(t, err)
	require.Len(t, page3, 20)
	assert.Equal(t, "id-000", page3[19].ID)

	clamped, _, err := repo.ListBookmarks(ctx, entity.BookmarkFilter{}, common.Page{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Len(t, clamped, common.MaxPageSize)
}

func TestListBookmarksFilters(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()
	insertBookmark(t, repo, "1", "GitHub", "https://github.com", "开发", now)
	insertBookmark(t, repo, "2", "Gitee", "https://gitee.com", "开发", now.Add(time.Second))
	insertBookmark(t, repo, "3", "Figma", "https://www.figma.com/GIT", "设计", now.Add(2*time.Second))
	insertBookmark(t, repo, "4", "Google", "https://google.com", "搜索", now.Add(3*time.Second))

	got, total, err := repo.ListBookmarks(ctx, entity.BookmarkFilter{Search: "GIT"}, common.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"3", "2", "1"}, bookmarkIDs(got))

	got, total, err = repo.ListBookmarks(ctx, entity.BookmarkFilter{Search: "git", Category: "开发"}, common.Page{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{"2", "1"}, bookmarkIDs(got))
}

func TestListBookmarksTiesOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	insertBookmark(t, repo, "c", "C", "https://c", "", same)
	insertBookmark(t, repo, "a", "A", "https://a", "", same)
	insertBookmark(t, repo, "b", "B", "https://b", "", same)

	got, _, err := repo.ListBookmarks(ctx, entity.BookmarkFilter{}, common.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, bookmarkIDs(got))
}

func TestUpdateAndDeleteBookmark(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	insertBookmark(t, repo, "x", "X", "https://x", "旧", time.Now().UTC())

	title := "Renamed"
	require.NoError(t, repo.UpdateBookmark(ctx, "x", entity.BookmarkUpdates{Title: &title}))
	got, err := repo.GetBookmark(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "旧", got.Category)

	assert.ErrorIs(t, repo.UpdateBookmark(ctx, "nope", entity.BookmarkUpdates{Title: &title}), gorm.ErrRecordNotFound)

	require.NoError(t, repo.DeleteBookmark(ctx, "x"))
	assert.ErrorIs(t, repo.DeleteBookmark(ctx, "x"), gorm.ErrRecordNotFound)
}

func TestCategoryCounts(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	now := time.Now().UTC()
	for i, category := range []string{"A", "A", "B", "", "B"} {
		insertBookmark(t, repo, fmt.Sprint(i), "t", fmt.Sprintf("https://%d", i), category, now)
	}

	counts, err := repo.CategoryCounts(ctx, "其他")
	require.NoError(t, err)
	assert.Equal(t, []db.CategoryCount{
		{Name: "A", Count: 2},
		{Name: "B", Count: 2},
		{Name: "其他", Count: 1},
	}, counts)

	named, err := repo.NamedCategoryCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []db.CategoryCount{{Name: "A", Count: 2}, {Name: "B", Count: 2}}, named)
}

func TestLoginLogs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	admin, err := repo.GetAccountByUsername(ctx, "admin")
	require.NoError(t, err)

	now := time.Now().UTC()
	for _, age := range []time.Duration{40 * 24 * time.Hour, 31 * 24 * time.Hour, time.Hour, 0} {
		require.NoError(t, repo.CreateLoginLog(ctx, &db.LoginLog{
			UserID: admin.ID, Username: admin.Username, LoginTime: now.Add(-age), IPAddress: "1.1.1.1",
		}))
	}

	logs, err := repo.ListLoginLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].LoginTime.After(logs[1].LoginTime))

	deleted, err := repo.DeleteLoginLogsBefore(ctx, now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	counts, err := repo.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []db.TableCount{
		{Name: "bookmarks", Count: 0},
		{Name: "auth", Count: 1},
		{Name: "login_logs", Count: 2},
	}, counts)
}

func TestAccountPasswordUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	admin, err := repo.GetAccountByUsername(ctx, "admin")
	require.NoError(t, err)

	pw := "changed"
	require.NoError(t, repo.UpdateAccount(ctx, admin.ID, entity.AccountUpdates{Password: &pw}))
	got, err := repo.GetAccountByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Password)

	_, err = repo.GetAccountByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func bookmarkIDs(bookmarks []db.Bookmark) []string {
	ids := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}
	return ids
}
