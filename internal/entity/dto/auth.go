package dto

import "time"

// LoginRequest 登录请求体。
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordUpdateRequest 修改密码请求体。
type PasswordUpdateRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// AccountSummary 返回给客户端的账户信息，不含密码。
type AccountSummary struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse 登录成功响应。
type LoginResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    AccountSummary `json:"user"`
}

// TokenCheckResponse GET /api/auth 响应。
type TokenCheckResponse struct {
	Success    bool           `json:"success"`
	User       AccountSummary `json:"user"`
	TokenValid bool           `json:"tokenValid"`
}
