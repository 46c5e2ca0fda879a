package api

import (
	"bookmarks/internal/entity/dto"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ListBookmarks GET /api/bookmarks
func (h *HTTPHandler) ListBookmarks(c *gin.Context) {
	query := dto.BookmarkQuery{
		Page:     parseIntParam(c.Query("page")),
		Limit:    parseIntParam(c.Query("limit")),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.bookmarkService.List(ctx, query)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SyncBookmarks POST /api/bookmarks {action, data}
func (h *HTTPHandler) SyncBookmarks(c *gin.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.syncService.Sync(ctx, req.Action, req.Data)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateBookmark PUT /api/bookmarks {id, title, url, category}
func (h *HTTPHandler) UpdateBookmark(c *gin.Context) {
	var req dto.BookmarkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.bookmarkService.Update(ctx, req); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkMutationResponse{Success: true, Message: "书签更新成功", ID: req.ID})
}

// DeleteBookmark DELETE /api/bookmarks?id=
func (h *HTTPHandler) DeleteBookmark(c *gin.Context) {
	id := c.Query("id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.bookmarkService.Delete(ctx, id); err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookmarkMutationResponse{Success: true, Message: "书签删除成功", ID: id})
}

// ExportBookmarks GET /api/bookmarks/export，以附件形式下载全部书签
func (h *HTTPHandler) ExportBookmarks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	data, filename, err := h.backupService.Export(ctx)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// parseIntParam 解析失败返回 0，由服务层回落到默认值
func parseIntParam(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return value
}
