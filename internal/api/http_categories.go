package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories GET /api/categories
func (h *HTTPHandler) ListCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.categoryService.List(ctx)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
