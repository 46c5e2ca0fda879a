package dto

import "time"

// 初始化流程的下一步提示。
const (
	NextStepBindDatabase  = "bind_database"
	NextStepCheckDatabase = "check_database"
	NextStepInitDatabase  = "init_database"
	NextStepCreateAdmin   = "create_admin"
	NextStepReady         = "ready"
	NextStepError         = "error"
)

// 初始化动作，POST /api/init 的 action 字段。
const (
	InitActionInitDatabase     = "init_database"
	InitActionCreateAdmin      = "create_admin"
	InitActionCreateSampleData = "create_sample_data"
)

// InitChecks 各阶段检查结果。
type InitChecks struct {
	DatabaseBinding    bool `json:"database_binding"`
	DatabaseConnection bool `json:"database_connection"`
	TablesExist        bool `json:"tables_exist"`
	AdminAccount       bool `json:"admin_account"`
}

// InitStatus GET /api/init 响应。
type InitStatus struct {
	Success   bool       `json:"success"`
	Timestamp time.Time  `json:"timestamp"`
	Checks    InitChecks `json:"checks"`
	NextStep  string     `json:"next_step"`
	Message   string     `json:"message"`
}

// InitActionRequest POST /api/init 请求体。
type InitActionRequest struct {
	Action string `json:"action"`
}

// InitActionResponse POST /api/init 响应。
type InitActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Details string `json:"details,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// StatsResponse 书签统计。
type StatsResponse struct {
	Success     bool           `json:"success"`
	Total       int64          `json:"total"`
	Categories  []CategoryItem `json:"categories"`
	RecentCount int64          `json:"recentCount"`
}

// LoginLogItem 单条登录日志。
type LoginLogItem struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
}

// LoginLogListResponse 登录日志列表。
type LoginLogListResponse struct {
	Success bool           `json:"success"`
	Logs    []LoginLogItem `json:"logs"`
}

// CleanupResponse 日志清理结果。
type CleanupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// TableInfo 单表行数。
type TableInfo struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// TableInfoResponse 各表行数。
type TableInfoResponse struct {
	Success bool        `json:"success"`
	Tables  []TableInfo `json:"tables"`
}

// BackupResponse 备份结果。
type BackupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Key     string `json:"key"`
	Count   int    `json:"count"`
}

// BookmarkExport 导出文件的内容。
type BookmarkExport struct {
	ExportedAt time.Time      `json:"exported_at"`
	Count      int            `json:"count"`
	Bookmarks  []BookmarkItem `json:"bookmarks"`
}
