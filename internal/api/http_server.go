package api

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/config"
	"bookmarks/internal/model"
	"bookmarks/internal/ratelimit"
	"bookmarks/internal/service"
	"bookmarks/internal/storage"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 单个请求访问数据库的超时时间
const requestTimeout = 10 * time.Second

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg     config.Config
	repo    model.Repository
	limiter *ratelimit.Limiter

	// 服务层
	syncService        *service.SyncService
	bookmarkService    *service.BookmarkService
	categoryService    *service.CategoryService
	authService        *service.AuthService
	maintenanceService *service.MaintenanceService
	backupService      *service.BackupService
	initService        *service.InitService
}

// NewHTTPHandler 创建 HTTP 处理器实例。repo 为 nil 表示数据库未配置，
// 除 /api/init 和 /health 外的接口都会返回配置错误。limiter 为 nil 时不限流。
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, limiter *ratelimit.Limiter) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	tokens, err := auth.NewTokenCodec(cfg.TokenMode, cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:                cfg,
		repo:               repo,
		limiter:            limiter,
		syncService:        service.NewSyncService(repo),
		bookmarkService:    service.NewBookmarkService(repo),
		categoryService:    service.NewCategoryService(repo),
		authService:        service.NewAuthService(repo, tokens),
		maintenanceService: service.NewMaintenanceService(repo),
		backupService:      service.NewBackupService(repo, store),
		initService:        service.NewInitService(repo),
	}, nil
}

// NewRouter 组装中间件与全部路由
func NewRouter(h *HTTPHandler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(NoCacheMiddleware())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("服务器内部错误: %v", recovered))
	}))

	r.NoMethod(func(c *gin.Context) {
		ErrorResponse(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound, msgRouteNotFound)
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api")
	apiGroup.GET("/init", h.InitStatus)
	apiGroup.POST("/init", h.RunInit)

	data := apiGroup.Group("")
	data.Use(h.SchemaMiddleware())

	bookmarks := data.Group("/bookmarks")
	bookmarks.GET("", h.ListBookmarks)
	bookmarks.GET("/export", h.ExportBookmarks)
	writes := bookmarks.Group("")
	if h.cfg.ProtectWrites {
		writes.Use(h.AuthMiddleware())
	}
	writes.POST("", h.SyncBookmarks)
	writes.PUT("", h.UpdateBookmark)
	writes.DELETE("", h.DeleteBookmark)

	data.GET("/categories", h.ListCategories)

	authGroup := data.Group("/auth")
	authGroup.POST("", h.LoginRateLimit(), h.Login)
	authGroup.GET("", h.CheckAuth)
	authGroup.PUT("", h.UpdatePassword)

	admin := data.Group("/admin")
	admin.Use(h.AuthMiddleware())
	admin.GET("/stats", h.Stats)
	admin.GET("/logins", h.ListLoginLogs)
	admin.DELETE("/logins", h.CleanupLoginLogs)
	admin.GET("/tables", h.TableInfo)
	admin.POST("/backup", h.Backup)

	return r
}
