package api

import (
	"bookmarks/internal/entity/common"
	"bookmarks/internal/model/sql"
	"bookmarks/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "参数错误",
			err:            service.NewValidationError("缺少书签ID"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "缺少书签ID",
		},
		{
			name:           "认证失败",
			err:            service.NewAuthError("密码错误"),
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "密码错误",
		},
		{
			name:           "资源不存在",
			err:            service.NewNotFoundError("书签不存在"),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "书签不存在",
		},
		{
			name:           "数据库未配置",
			err:            service.NewConfigurationError(nil),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    service.ConfigurationMessage,
		},
		{
			name:           "仓库未初始化",
			err:            fmt.Errorf("initialise: %w", sql.ErrNotConfigured),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    service.ConfigurationMessage,
		},
		{
			name:           "存储失败",
			err:            service.NewStorageError("同步失败", errors.New("disk I/O error")),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "同步失败: disk I/O error",
		},
		{
			name:           "未知错误",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "服务器内部错误: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)

			WriteError(c, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if !c.IsAborted() {
				t.Error("expected context to be aborted")
			}

			var response common.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Success {
				t.Error("expected success=false")
			}
			if response.Error != tt.expectedMsg || response.Message != tt.expectedMsg {
				t.Errorf("expected message %q, got error=%q message=%q", tt.expectedMsg, response.Error, response.Message)
			}
			if response.Status != tt.expectedStatus {
				t.Errorf("expected status field %d, got %d", tt.expectedStatus, response.Status)
			}
			if response.Timestamp.IsZero() {
				t.Error("expected timestamp to be set")
			}
		})
	}
}
