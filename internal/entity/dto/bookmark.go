package dto

import (
	"encoding/json"
	"time"
)

// BookmarkItem 列表中的单个书签。前端同时读取中文键和英文键，两套键必须保持一致。
type BookmarkItem struct {
	ID          string    `json:"id"`
	TitleCN     string    `json:"标题"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	CategoryCN  string    `json:"分类"`
	Category    string    `json:"category"`
	CreatedAtCN time.Time `json:"创建时间"`
	CreatedAt   time.Time `json:"created_at"`
	DateAdded   int64     `json:"dateAdded"`
	Path        string    `json:"path"`
}

// BookmarkQuery 列表查询参数。Page、Limit 在绑定后由服务层规范化。
type BookmarkQuery struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Search   string `form:"search"`
	Category string `form:"category"`
}

// BookmarkListResponse 分页列表响应。
type BookmarkListResponse struct {
	Success      bool           `json:"success"`
	TotalCN      int64          `json:"总数"`
	Total        int64          `json:"total"`
	PageCN       int            `json:"页码"`
	Page         int            `json:"page"`
	LimitCN      int            `json:"每页数量"`
	Limit        int            `json:"limit"`
	TotalPagesCN int64          `json:"总页数"`
	TotalPages   int64          `json:"totalPages"`
	BookmarksCN  []BookmarkItem `json:"书签"`
	Bookmarks    []BookmarkItem `json:"bookmarks"`
}

// BookmarkPayload 同步请求中的单个书签。
//
// DateAdded 来自浏览器扩展，可能带小数部分，因此按浮点数解析。
type BookmarkPayload struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	Path      string   `json:"path"`
	DateAdded *float64 `json:"dateAdded"`
}

// SyncRequest POST /api/bookmarks 请求体，Data 的结构取决于 Action。
type SyncRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// SyncResponse 同步结果。
type SyncResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// FullSyncResult 批量同步计数，errors 为失败条数而非错误详情。
type FullSyncResult struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// UpsertResult 单条写入结果。
type UpsertResult struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// RemoveResult 删除结果。
type RemoveResult struct {
	Deleted int64 `json:"deleted"`
}

// BookmarkUpdateRequest PUT /api/bookmarks 请求体。
type BookmarkUpdateRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

// BookmarkMutationResponse 单条更新/删除的响应。
type BookmarkMutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// CategoryItem 分类名与书签数量。
type CategoryItem struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CategoryListResponse GET /api/categories 响应。
type CategoryListResponse struct {
	Success    bool           `json:"success"`
	Categories []CategoryItem `json:"categories"`
	Total      int64          `json:"total"`
	Message    string         `json:"message"`
}
