package sql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*GormRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	repo, err := NewGormRepository(gdb, AdminSeed{})
	require.NoError(t, err)
	return repo, mock
}

func TestExecPropagatesError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("disk full")
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookmarks")).WillReturnError(boom)

	_, err := repo.DeleteBookmarksByIDOrURL(context.Background(), "a", "https://a")
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryFirstSwallowsError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS count FROM bookmarks")).
		WillReturnError(errors.New("connection reset"))

	row, ok := repo.QueryFirst(context.Background(), "SELECT COUNT(*) AS count FROM bookmarks")
	assert.False(t, ok)
	assert.Nil(t, row)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryAndPingPropagateError(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT CASE WHEN category")).WillReturnError(errors.New("syntax error"))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).WillReturnError(errors.New("no connection"))

	_, err := repo.CategoryCounts(context.Background(), "其他")
	assert.Error(t, err)
	assert.Error(t, repo.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilRepositoryNotConfigured(t *testing.T) {
	var repo *GormRepository
	_, err := repo.Query(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = repo.Exec(context.Background(), "DELETE FROM bookmarks")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, repo.InitializeTables(context.Background()), ErrNotConfigured)
}

func TestNormalizeRows(t *testing.T) {
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	raw := []map[string]any{
		{"name": []byte("工具"), "count": int32(3), "ratio": float32(0.5)},
		nil,
		{"name": "其他", "count": float64(2), "at": stamp},
		{"name": nil, "count": "7"},
	}

	rows := normalizeRows(raw)
	require.Len(t, rows, 3)

	assert.Equal(t, "工具", rows[0].String("name"))
	assert.EqualValues(t, 3, rows[0].Int64("count"))
	assert.Equal(t, float64(0.5), rows[0]["ratio"])

	assert.EqualValues(t, 2, rows[1].Int64("count"))
	assert.Equal(t, "2024-01-02T03:04:05Z", rows[1].String("at"))

	assert.Equal(t, "", rows[2].String("name"))
	assert.EqualValues(t, 7, rows[2].Int64("count"))
	assert.Zero(t, rows[2].Int64("missing"))

	assert.NotNil(t, normalizeRows(nil))
}
