package api

import (
	"bookmarks/internal/entity/dto"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// InitStatus GET /api/init，逐级检查系统是否就绪。未通过的步骤返回 200，
// 检查本身中断时返回 500。
func (h *HTTPHandler) InitStatus(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	status := h.initService.Status(ctx)
	if status.NextStep == dto.NextStepError {
		c.JSON(http.StatusInternalServerError, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

// RunInit POST /api/init {action}
func (h *HTTPHandler) RunInit(c *gin.Context) {
	var req dto.InitActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.initService.Run(ctx, req.Action)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
