package model

import (
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/common"
	"bookmarks/internal/entity/db"
	"bookmarks/internal/model/sql"
	"context"
	"time"
)

// Gateway 存储网关：原始 SQL、建表与探活
type Gateway interface {
	Query(ctx context.Context, query string, args ...any) (sql.Rows, error)
	QueryFirst(ctx context.Context, query string, args ...any) (sql.Row, bool)
	Exec(ctx context.Context, query string, args ...any) (sql.ExecResult, error)

	InitializeTables(ctx context.Context) error
	CreateTables(ctx context.Context) error
	SeedAdmin(ctx context.Context) (bool, error)
	AdminExists(ctx context.Context) (bool, error)
	Ping(ctx context.Context) error
	MissingTables(ctx context.Context) ([]string, error)
	TableCounts(ctx context.Context) ([]db.TableCount, error)
}

// Repository 定义数据库操作接口
type Repository interface {
	Gateway

	// 书签
	UpsertBookmark(ctx context.Context, bookmark *db.Bookmark) error
	DeleteBookmarksByIDOrURL(ctx context.Context, id, url string) (int64, error)
	GetBookmark(ctx context.Context, id string) (*db.Bookmark, error)
	UpdateBookmark(ctx context.Context, id string, updates entity.BookmarkUpdates) error
	DeleteBookmark(ctx context.Context, id string) error
	ListBookmarks(ctx context.Context, filter entity.BookmarkFilter, page common.Page) ([]db.Bookmark, int64, error)
	AllBookmarks(ctx context.Context) ([]db.Bookmark, error)
	CountBookmarks(ctx context.Context) (int64, error)
	CountBookmarksSince(ctx context.Context, since time.Time) (int64, error)

	// 分类
	CategoryCounts(ctx context.Context, defaultName string) ([]db.CategoryCount, error)
	NamedCategoryCounts(ctx context.Context) ([]db.CategoryCount, error)

	// 账户与登录日志
	CreateAccount(ctx context.Context, account *db.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*db.Account, error)
	GetAccountByID(ctx context.Context, id uint) (*db.Account, error)
	UpdateAccount(ctx context.Context, id uint, updates entity.AccountUpdates) error
	CreateLoginLog(ctx context.Context, log *db.LoginLog) error
	ListLoginLogs(ctx context.Context, limit int) ([]db.LoginLog, error)
	DeleteLoginLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

var _ Repository = (*sql.GormRepository)(nil)

// ManagedTables 服务依赖的全部表名
func ManagedTables() []string {
	return append([]string(nil), sql.ManagedTables...)
}
