package auth

import (
	"bookmarks/internal/entity/db"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 签名令牌的载荷，与旧版令牌字段保持一致。
type Claims struct {
	UserID    uint   `json:"userId"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
	jwt.RegisteredClaims
}

// Manager encapsulates JWT generation and validation.
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

// NewManager creates a new JWT manager.
func NewManager(secret, issuer string, expiry time.Duration) (*Manager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if expiry <= 0 {
		expiry = DefaultTokenTTL
	}
	if strings.TrimSpace(issuer) == "" {
		issuer = "bookmarks"
	}
	return &Manager{
		secret: []byte(trimmed),
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Encode issues a signed JWT for the provided account.
func (m *Manager) Encode(account *db.Account) (string, error) {
	if m == nil {
		return "", errors.New("jwt manager is nil")
	}
	if account == nil || account.ID == 0 {
		return "", errors.New("invalid account for token generation")
	}
	now := m.now().UTC()

	claims := Claims{
		UserID:    account.ID,
		Username:  account.Username,
		Timestamp: now.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", account.ID),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode validates the token and returns its payload.
func (m *Manager) Decode(tokenString string) (*TokenPayload, error) {
	if m == nil {
		return nil, errors.New("jwt manager is nil")
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return &TokenPayload{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Timestamp: claims.Timestamp,
	}, nil
}
