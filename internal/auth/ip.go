package auth

import (
	"net/http"
	"strings"
)

const unknownIP = "unknown"

// ClientIP 按 CF-Connecting-IP、X-Forwarded-For 首项、X-Real-IP 的顺序取客户端地址
func ClientIP(h http.Header) string {
	if ip := strings.TrimSpace(h.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if forwarded := h.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(h.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return unknownIP
}
