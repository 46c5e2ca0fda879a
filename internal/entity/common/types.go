package common

import "time"

const (
	// DefaultPageSize 书签列表默认每页数量。
	DefaultPageSize = 50
	// MaxPageSize 每页数量上限，防止一次拉取全部数据。
	MaxPageSize = 100
)

// Page 分页参数，Normalize 之后 Page >= 1 且 1 <= Limit <= MaxPageSize。
type Page struct {
	Page  int
	Limit int
}

// Normalize 填充默认值并截断上限。
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Offset 返回 (page-1)*limit。
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages 返回 ceil(total/limit)。
func (p Page) TotalPages(total int64) int64 {
	if p.Limit <= 0 || total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}

// ErrorResponse 统一的错误响应结构，error 与 message 携带同一文本。
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageResponse 只带提示信息的成功响应。
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
