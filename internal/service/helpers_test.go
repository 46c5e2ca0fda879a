package service

import (
	"bookmarks/internal/config"
	"bookmarks/internal/model"
	"bookmarks/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestRepo 基于临时 SQLite 文件创建仓库，init 为 true 时完成建表和默认管理员
func newTestRepo(t *testing.T, init bool) model.Repository {
	t.Helper()
	repo, err := model.InitRepository(&config.Config{
		DBType:        model.DBTypeSQLite,
		DBPath:        filepath.Join(t.TempDir(), "test.db"),
		AdminUsername: "admin",
		AdminPassword: "admin123",
	})
	require.NoError(t, err)
	require.NotNil(t, repo)
	if init {
		require.NoError(t, repo.InitializeTables(context.Background()))
	}
	return repo
}

func requireKind(t *testing.T, err error, kind ErrorKind) *AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	require.Equal(t, kind, appErr.Kind, "message: %s", appErr.Message)
	return appErr
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	saves   []storage.SaveOptions
	err     error
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: map[string][]byte{}}
}

func (m *memoryStorage) Save(_ context.Context, data []byte, opts storage.SaveOptions) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if len(data) == 0 {
		return "", errors.New("empty payload")
	}
	key := opts.Category + "/" + opts.BaseName + "." + opts.Extension
	m.saves = append(m.saves, opts)
	if _, ok := m.objects[key]; ok && opts.SkipIfExists {
		return key, nil
	}
	m.objects[key] = append([]byte(nil), data...)
	return key, nil
}
