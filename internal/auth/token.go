package auth

import (
	"bookmarks/internal/entity/db"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	TokenModeJWT    = "jwt"
	TokenModeLegacy = "legacy"

	// DefaultTokenTTL 令牌有效期
	DefaultTokenTTL = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)
)

// TokenPayload 令牌中携带的身份信息，Timestamp 为签发时间（毫秒）
type TokenPayload struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// TokenCodec 负责令牌的签发与解析
type TokenCodec interface {
	Encode(account *db.Account) (string, error)
	Decode(token string) (*TokenPayload, error)
}

// NewTokenCodec 根据 mode 创建令牌编解码器，空 mode 视为 jwt
func NewTokenCodec(mode, secret, issuer string, ttl time.Duration) (TokenCodec, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", TokenModeJWT:
		return NewManager(secret, issuer, ttl)
	case TokenModeLegacy:
		return NewLegacyCodec(ttl), nil
	default:
		return nil, fmt.Errorf("unsupported token mode: %s", mode)
	}
}

// LegacyCodec 旧版令牌：base64(JSON)，不签名，任何人都可以伪造。
// 仅为兼容已发出的令牌保留。
type LegacyCodec struct {
	expiry time.Duration
	now    func() time.Time
}

// NewLegacyCodec 创建旧版令牌编解码器
func NewLegacyCodec(expiry time.Duration) *LegacyCodec {
	if expiry <= 0 {
		expiry = DefaultTokenTTL
	}
	return &LegacyCodec{expiry: expiry, now: time.Now}
}

// Encode 生成旧版令牌
func (c *LegacyCodec) Encode(account *db.Account) (string, error) {
	if account == nil || account.ID == 0 {
		return "", errors.New("invalid account for token generation")
	}
	raw, err := json.Marshal(TokenPayload{
		UserID:    account.ID,
		Username:  account.Username,
		Timestamp: c.now().UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode 解析旧版令牌并检查是否过期
func (c *LegacyCodec) Decode(token string) (*TokenPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var payload TokenPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.UserID == 0 || payload.Timestamp <= 0 {
		return nil, ErrInvalidToken
	}
	issued := time.UnixMilli(payload.Timestamp)
	if c.now().Sub(issued) > c.expiry {
		return nil, ErrTokenExpired
	}
	return &payload, nil
}
