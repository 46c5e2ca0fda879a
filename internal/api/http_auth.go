package api

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/entity/common"
	"bookmarks/internal/entity/dto"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Login POST /api/auth
func (h *HTTPHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	clientIP := auth.ClientIP(c.Request.Header)
	resp, err := h.authService.Login(ctx, req, clientIP, c.GetHeader("User-Agent"))
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"username":  req.Username,
			"client_ip": clientIP,
		}).Warn("login attempt failed")
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckAuth GET /api/auth，校验 Bearer 令牌
func (h *HTTPHandler) CheckAuth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.authService.CheckToken(ctx, bearerToken(c))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePassword PUT /api/auth
func (h *HTTPHandler) UpdatePassword(c *gin.Context) {
	var req dto.PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.authService.UpdatePassword(ctx, req); err != nil {
		WriteError(c, err)
		return
	}
	logrus.WithField("username", req.Username).Info("password updated")
	c.JSON(http.StatusOK, common.MessageResponse{Success: true, Message: "密码更新成功"})
}
