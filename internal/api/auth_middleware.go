package api

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/entity/db"
	"bookmarks/internal/model/sql"
	"bookmarks/internal/service"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	currentAccountContextKey = "current-account"
	bearerPrefix             = "Bearer "
)

// SchemaMiddleware 数据库未配置时直接返回配置错误，否则确保表结构存在
func (h *HTTPHandler) SchemaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.repo == nil {
			WriteError(c, service.NewConfigurationError(sql.ErrNotConfigured))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := h.repo.InitializeTables(ctx); err != nil {
			WriteError(c, err)
			return
		}
		c.Next()
	}
}

// AuthMiddleware Bearer 令牌认证中间件
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		account, err := h.authService.Authenticate(ctx, bearerToken(c))
		if err != nil {
			WriteError(c, err)
			return
		}
		c.Set(currentAccountContextKey, account)
		c.Next()
	}
}

// LoginRateLimit 按客户端 IP 限制登录次数，Redis 不可用时放行
func (h *HTTPHandler) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter == nil {
			c.Next()
			return
		}
		allowed, err := h.limiter.Allow(c.Request.Context(), "login:"+auth.ClientIP(c.Request.Header))
		if err != nil {
			logrus.WithError(err).Warn("login rate limit check failed")
			c.Next()
			return
		}
		if !allowed {
			ErrorResponse(c, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		c.Next()
	}
}

// CurrentAccount 从上下文获取当前认证账户
func CurrentAccount(c *gin.Context) *db.Account {
	value, exists := c.Get(currentAccountContextKey)
	if !exists {
		return nil
	}
	account, ok := value.(*db.Account)
	if !ok {
		return nil
	}
	return account
}

// bearerToken 取 Authorization: Bearer <token>，格式不符时返回空串
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
