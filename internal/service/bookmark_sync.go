package service

import (
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SyncAction 浏览器扩展上报的同步动作
type SyncAction string

const (
	ActionFullSync SyncAction = "fullSync"
	ActionCreate   SyncAction = "create"
	ActionUpdate   SyncAction = "update"
	ActionRemove   SyncAction = "remove"
	ActionMove     SyncAction = "move"
)

const (
	syncSuccessMessage = "同步成功"
	upsertedAction     = "upserted"
)

// ParseSyncAction 解析动作名，未知动作返回校验错误
func ParseSyncAction(raw string) (SyncAction, error) {
	switch action := SyncAction(raw); action {
	case ActionFullSync, ActionCreate, ActionUpdate, ActionRemove, ActionMove:
		return action, nil
	default:
		return "", NewValidationError("不支持的操作类型")
	}
}

// SyncHandler 每种同步动作对应一个方法
type SyncHandler interface {
	FullSync(ctx context.Context, items []json.RawMessage) (dto.FullSyncResult, error)
	Create(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error)
	Update(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error)
	Remove(ctx context.Context, item dto.BookmarkPayload) (dto.RemoveResult, error)
	Move(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error)
}

// SyncService 书签同步，写入按 id 整行替换，后写覆盖先写
type SyncService struct {
	repo model.Repository
	now  func() time.Time
}

// NewSyncService 创建同步服务
func NewSyncService(repo model.Repository) *SyncService {
	return &SyncService{repo: repo, now: time.Now}
}

var _ SyncHandler = (*SyncService)(nil)

// Sync 解析动作与载荷并分发
func (s *SyncService) Sync(ctx context.Context, action string, data json.RawMessage) (*dto.SyncResponse, error) {
	parsed, err := ParseSyncAction(action)
	if err != nil {
		return nil, err
	}
	result, err := dispatchSync(ctx, s, parsed, data)
	if err != nil {
		return nil, err
	}
	return &dto.SyncResponse{
		Success: true,
		Action:  string(parsed),
		Message: syncSuccessMessage,
		Result:  result,
	}, nil
}

func dispatchSync(ctx context.Context, h SyncHandler, action SyncAction, data json.RawMessage) (any, error) {
	if action == ActionFullSync {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil || items == nil {
			return nil, NewValidationError("书签数据必须是数组格式")
		}
		return h.FullSync(ctx, items)
	}

	item, err := decodePayload(data)
	if err != nil {
		return nil, err
	}
	switch action {
	case ActionCreate:
		return h.Create(ctx, item)
	case ActionUpdate:
		return h.Update(ctx, item)
	case ActionRemove:
		return h.Remove(ctx, item)
	case ActionMove:
		return h.Move(ctx, item)
	default:
		return nil, NewValidationError("不支持的操作类型")
	}
}

func decodePayload(data json.RawMessage) (dto.BookmarkPayload, error) {
	var item dto.BookmarkPayload
	if len(data) == 0 {
		return item, nil
	}
	if err := json.Unmarshal(data, &item); err != nil {
		return item, NewValidationError("书签数据格式错误")
	}
	return item, nil
}

// FullSync 逐条写入，单条失败只计数不中断
func (s *SyncService) FullSync(ctx context.Context, items []json.RawMessage) (dto.FullSyncResult, error) {
	result := dto.FullSyncResult{Total: len(items)}
	for idx, raw := range items {
		item, err := decodePayload(raw)
		if err == nil {
			_, err = s.upsert(ctx, item)
		}
		if err != nil {
			logrus.WithError(err).WithField("index", idx).Warn("failed to sync bookmark")
			result.Errors++
			continue
		}
		result.Processed++
	}
	return result, nil
}

// Create 新建书签
func (s *SyncService) Create(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error) {
	return s.upsert(ctx, item)
}

// Update 修改书签
func (s *SyncService) Update(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error) {
	return s.upsert(ctx, item)
}

// Move 移动书签，path 变化后分类随之变化
func (s *SyncService) Move(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error) {
	return s.upsert(ctx, item)
}

// Remove 删除 id 或 url 匹配的书签，没有匹配时 deleted 为 0
func (s *SyncService) Remove(ctx context.Context, item dto.BookmarkPayload) (dto.RemoveResult, error) {
	if item.ID == "" && item.URL == "" {
		return dto.RemoveResult{}, nil
	}
	deleted, err := s.repo.DeleteBookmarksByIDOrURL(ctx, item.ID, item.URL)
	if err != nil {
		return dto.RemoveResult{}, NewStorageError("同步失败", err)
	}
	return dto.RemoveResult{Deleted: deleted}, nil
}

func (s *SyncService) upsert(ctx context.Context, item dto.BookmarkPayload) (dto.UpsertResult, error) {
	if item.URL == "" {
		return dto.UpsertResult{}, NewValidationError("书签URL不能为空")
	}

	now := s.now().UTC()
	id := item.ID
	if id == "" {
		id = GenerateBookmarkID(now)
	}
	dateAdded := now.UnixMilli()
	if item.DateAdded != nil && *item.DateAdded != 0 {
		dateAdded = int64(*item.DateAdded)
	}

	bookmark := &db.Bookmark{
		ID:        id,
		Title:     item.Title,
		URL:       item.URL,
		Category:  ExtractCategory(item.Path),
		Path:      item.Path,
		DateAdded: dateAdded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertBookmark(ctx, bookmark); err != nil {
		return dto.UpsertResult{}, NewStorageError("同步失败", err)
	}
	return dto.UpsertResult{ID: id, Action: upsertedAction}, nil
}

// ExtractCategory 取 path 中第一个非空白的段作为分类，返回原始段（不去空白）
func ExtractCategory(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if strings.TrimSpace(segment) != "" {
			return segment
		}
	}
	return ""
}

// GenerateBookmarkID 毫秒时间戳的 36 进制加随机后缀
func GenerateBookmarkID(now time.Time) string {
	random := uuid.New()
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(random[:8]), 36)
	return fmt.Sprintf("%s%s", strconv.FormatInt(now.UnixMilli(), 36), suffix)
}
