package service

import (
	"bookmarks/internal/entity/converter"
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"fmt"
	"sort"
)

// DefaultCategoryName 没有分类的书签归入此分类
const DefaultCategoryName = "其他"

// CategoryService 分类统计
type CategoryService struct {
	repo model.Repository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo model.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 返回各分类的书签数，数量降序，数量相同按名称字节序升序
func (s *CategoryService) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	counts, err := s.repo.CategoryCounts(ctx, DefaultCategoryName)
	if err != nil {
		return nil, NewStorageError("获取分类失败", err)
	}
	sortCategoryCounts(counts)

	var total int64
	for _, c := range counts {
		total += c.Count
	}
	return &dto.CategoryListResponse{
		Success:    true,
		Categories: converter.CategoriesToItems(counts),
		Total:      total,
		Message:    fmt.Sprintf("找到 %d 个分类，共 %d 个书签", len(counts), total),
	}, nil
}

// 各数据库的排序规则不同，统一在这里重新排序
func sortCategoryCounts(counts []db.CategoryCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
}
