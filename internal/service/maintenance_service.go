package service

import (
	"bookmarks/internal/entity/converter"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"fmt"
	"time"
)

const (
	DefaultLoginLogLimit = 10
	MaxLoginLogLimit     = 100
	// DefaultLogRetention 登录日志默认保留天数
	DefaultLogRetention = 30
)

// MaintenanceService 统计、登录日志与表信息
type MaintenanceService struct {
	repo model.Repository
	now  func() time.Time
}

// NewMaintenanceService 创建维护服务
func NewMaintenanceService(repo model.Repository) *MaintenanceService {
	return &MaintenanceService{repo: repo, now: time.Now}
}

// Stats 书签总数、有名分类统计与最近 24 小时新增数
func (s *MaintenanceService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.repo.CountBookmarks(ctx)
	if err != nil {
		return nil, NewStorageError("获取统计失败", err)
	}
	categories, err := s.repo.NamedCategoryCounts(ctx)
	if err != nil {
		return nil, NewStorageError("获取统计失败", err)
	}
	sortCategoryCounts(categories)
	recent, err := s.repo.CountBookmarksSince(ctx, s.now().UTC().Add(-24*time.Hour))
	if err != nil {
		return nil, NewStorageError("获取统计失败", err)
	}
	return &dto.StatsResponse{
		Success:     true,
		Total:       total,
		Categories:  converter.CategoriesToItems(categories),
		RecentCount: recent,
	}, nil
}

// RecentLogins 最近的登录日志，limit 非法时用默认值，上限 100
func (s *MaintenanceService) RecentLogins(ctx context.Context, limit int) (*dto.LoginLogListResponse, error) {
	if limit < 1 {
		limit = DefaultLoginLogLimit
	}
	if limit > MaxLoginLogLimit {
		limit = MaxLoginLogLimit
	}
	logs, err := s.repo.ListLoginLogs(ctx, limit)
	if err != nil {
		return nil, NewStorageError("获取登录日志失败", err)
	}
	return &dto.LoginLogListResponse{Success: true, Logs: converter.LoginLogsToItems(logs)}, nil
}

// CleanupLogs 删除 days 天之前的登录日志。只由管理接口或命令行显式调用。
func (s *MaintenanceService) CleanupLogs(ctx context.Context, days int) (*dto.CleanupResponse, error) {
	if days < 1 {
		days = DefaultLogRetention
	}
	cutoff := s.now().UTC().AddDate(0, 0, -days)
	deleted, err := s.repo.DeleteLoginLogsBefore(ctx, cutoff)
	if err != nil {
		return nil, NewStorageError("清理登录日志失败", err)
	}
	return &dto.CleanupResponse{
		Success: true,
		Message: fmt.Sprintf("已清理 %d 天前的 %d 条登录日志", days, deleted),
		Deleted: deleted,
	}, nil
}

// TableInfo 各表行数
func (s *MaintenanceService) TableInfo(ctx context.Context) (*dto.TableInfoResponse, error) {
	counts, err := s.repo.TableCounts(ctx)
	if err != nil {
		return nil, NewStorageError("获取表信息失败", err)
	}
	tables := make([]dto.TableInfo, len(counts))
	for i, c := range counts {
		tables[i] = dto.TableInfo{Name: c.Name, Count: c.Count}
	}
	return &dto.TableInfoResponse{Success: true, Tables: tables}, nil
}
