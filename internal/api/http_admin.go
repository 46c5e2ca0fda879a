package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Stats GET /api/admin/stats
func (h *HTTPHandler) Stats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.maintenanceService.Stats(ctx)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListLoginLogs GET /api/admin/logins?limit=
func (h *HTTPHandler) ListLoginLogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.maintenanceService.RecentLogins(ctx, parseIntParam(c.Query("limit")))
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CleanupLoginLogs DELETE /api/admin/logins?days=
func (h *HTTPHandler) CleanupLoginLogs(c *gin.Context) {
	days := parseIntParam(c.Query("days"))
	if days < 1 {
		days = h.cfg.LoginLogRetentionDays
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.maintenanceService.CleanupLogs(ctx, days)
	if err != nil {
		WriteError(c, err)
		return
	}
	if account := CurrentAccount(c); account != nil {
		logrus.WithFields(logrus.Fields{
			"username": account.Username,
			"deleted":  resp.Deleted,
		}).Info("login logs cleaned up")
	}
	c.JSON(http.StatusOK, resp)
}

// TableInfo GET /api/admin/tables
func (h *HTTPHandler) TableInfo(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.maintenanceService.TableInfo(ctx)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Backup POST /api/admin/backup?daily=true
func (h *HTTPHandler) Backup(c *gin.Context) {
	daily, _ := strconv.ParseBool(c.Query("daily"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	resp, err := h.backupService.Snapshot(ctx, daily)
	if err != nil {
		WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
