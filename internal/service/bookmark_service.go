package service

import (
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/common"
	"bookmarks/internal/entity/converter"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// BookmarkService 书签列表与单条维护
type BookmarkService struct {
	repo model.Repository
}

// NewBookmarkService 创建书签服务
func NewBookmarkService(repo model.Repository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// List 分页查询，page/limit 越界时回落到默认值
func (s *BookmarkService) List(ctx context.Context, query dto.BookmarkQuery) (*dto.BookmarkListResponse, error) {
	page := common.Page{Page: query.Page, Limit: query.Limit}.Normalize()
	filter := entity.BookmarkFilter{Search: query.Search, Category: query.Category}

	bookmarks, total, err := s.repo.ListBookmarks(ctx, filter, page)
	if err != nil {
		return nil, NewStorageError("获取书签失败", err)
	}

	items := converter.BookmarksToItems(bookmarks)
	totalPages := page.TotalPages(total)
	return &dto.BookmarkListResponse{
		Success:      true,
		TotalCN:      total,
		Total:        total,
		PageCN:       page.Page,
		Page:         page.Page,
		LimitCN:      page.Limit,
		Limit:        page.Limit,
		TotalPagesCN: totalPages,
		TotalPages:   totalPages,
		BookmarksCN:  items,
		Bookmarks:    items,
	}, nil
}

// Update 修改标题、URL、分类，未提供的字段写为空
func (s *BookmarkService) Update(ctx context.Context, req dto.BookmarkUpdateRequest) error {
	if req.ID == "" {
		return NewValidationError("缺少书签ID")
	}
	updates := entity.BookmarkUpdates{
		Title:    &req.Title,
		URL:      &req.URL,
		Category: &req.Category,
	}
	if err := s.repo.UpdateBookmark(ctx, req.ID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("书签不存在")
		}
		return NewStorageError("更新失败", err)
	}
	return nil
}

// Delete 按 id 删除单条书签
func (s *BookmarkService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError("缺少书签ID")
	}
	if err := s.repo.DeleteBookmark(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("书签不存在")
		}
		return NewStorageError("删除失败", err)
	}
	return nil
}
