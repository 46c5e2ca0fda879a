package service

import (
	"bookmarks/internal/entity/converter"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"bookmarks/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const backupCategory = "backups"

// BackupService 导出书签并保存快照到对象存储
type BackupService struct {
	repo    model.Repository
	storage storage.Storage
	now     func() time.Time
}

// NewBackupService 创建备份服务，store 为 nil 时只能导出不能保存
func NewBackupService(repo model.Repository, store storage.Storage) *BackupService {
	return &BackupService{repo: repo, storage: store, now: time.Now}
}

// Export 生成导出文件内容与建议的文件名
func (s *BackupService) Export(ctx context.Context) ([]byte, string, error) {
	export, err := s.collect(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, "", NewStorageError("导出失败", err)
	}
	return data, fmt.Sprintf("bookmarks-%s.json", export.ExportedAt.Format("2006-01-02")), nil
}

// Snapshot 把全部书签写入存储。daily 为 true 时每天只保留第一份快照。
func (s *BackupService) Snapshot(ctx context.Context, daily bool) (*dto.BackupResponse, error) {
	if s.storage == nil {
		return nil, NewStorageError("备份失败", errors.New("storage backend is not configured"))
	}
	export, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(export)
	if err != nil {
		return nil, NewStorageError("备份失败", err)
	}

	opts := storage.SaveOptions{
		Category:    backupCategory,
		Extension:   "json",
		ContentType: "application/json",
		BaseName:    "bookmarks-" + export.ExportedAt.Format("150405"),
	}
	if daily {
		opts.BaseName = "bookmarks-daily"
		opts.SkipIfExists = true
	}

	key, err := s.storage.Save(ctx, data, opts)
	if err != nil {
		logrus.WithError(err).Error("failed to save bookmark backup")
		return nil, NewStorageError("备份失败", err)
	}
	logrus.WithFields(logrus.Fields{"key": key, "count": export.Count}).Info("bookmark backup saved")
	return &dto.BackupResponse{
		Success: true,
		Message: fmt.Sprintf("已备份 %d 个书签", export.Count),
		Key:     key,
		Count:   export.Count,
	}, nil
}

func (s *BackupService) collect(ctx context.Context) (*dto.BookmarkExport, error) {
	bookmarks, err := s.repo.AllBookmarks(ctx)
	if err != nil {
		return nil, NewStorageError("导出失败", err)
	}
	items := converter.BookmarksToItems(bookmarks)
	return &dto.BookmarkExport{
		ExportedAt: s.now().UTC(),
		Count:      len(items),
		Bookmarks:  items,
	}, nil
}
