package api

import (
	"bookmarks/internal/entity/common"
	"bookmarks/internal/model/sql"
	"bookmarks/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 非业务错误的固定提示
const (
	msgMethodNotAllowed = "不支持的HTTP方法"
	msgRouteNotFound    = "接口不存在"
	msgInvalidJSON      = "请求体格式错误，必须是有效的JSON"
	msgTooManyRequests  = "登录尝试过于频繁，请稍后再试"
)

// statusForKind 错误分类对应的 HTTP 状态码
func statusForKind(kind service.ErrorKind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindAuth:
		return http.StatusUnauthorized
	case service.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// resolveError 计算状态码和返回给客户端的文本
func resolveError(err error) (int, string) {
	if errors.Is(err, sql.ErrNotConfigured) {
		return http.StatusInternalServerError, service.ConfigurationMessage
	}
	appErr, ok := service.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError, fmt.Sprintf("服务器内部错误: %v", err)
	}
	switch appErr.Kind {
	case service.KindConfiguration:
		return http.StatusInternalServerError, service.ConfigurationMessage
	case service.KindStorage, service.KindUnknown:
		if appErr.Err != nil {
			return http.StatusInternalServerError, fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
	}
	return statusForKind(appErr.Kind), appErr.Message
}

// ErrorResponse 写出统一的错误信封并中止后续处理
func ErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, common.ErrorResponse{
		Success:   false,
		Error:     message,
		Message:   message,
		Status:    status,
		Timestamp: time.Now().UTC(),
	})
}

// WriteError 把业务错误映射为错误信封，5xx 同时记录日志
func WriteError(c *gin.Context, err error) {
	status, message := resolveError(err)
	if status >= http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
	}
	ErrorResponse(c, status, message)
}
