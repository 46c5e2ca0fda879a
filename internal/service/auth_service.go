package service

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/converter"
	"bookmarks/internal/entity/db"
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const minPasswordLength = 6

// AuthService 登录、令牌校验与改密
type AuthService struct {
	repo   model.Repository
	tokens auth.TokenCodec
	now    func() time.Time
}

// NewAuthService 创建认证服务
func NewAuthService(repo model.Repository, tokens auth.TokenCodec) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, now: time.Now}
}

// Login 校验用户名密码，签发令牌并记录登录日志
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, clientIP, userAgent string) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, NewValidationError("用户名和密码不能为空")
	}

	account, err := s.repo.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewAuthError("用户不存在")
		}
		return nil, NewStorageError("登录失败", err)
	}

	needsRehash, err := auth.VerifyPassword(account.Password, req.Password)
	if err != nil {
		return nil, NewAuthError("密码错误")
	}
	if needsRehash {
		s.upgradePassword(ctx, account, req.Password)
	}

	token, err := s.tokens.Encode(account)
	if err != nil {
		return nil, NewStorageError("登录失败", err)
	}

	if userAgent == "" {
		userAgent = "unknown"
	}
	if err := s.repo.CreateLoginLog(ctx, &db.LoginLog{
		UserID:    account.ID,
		Username:  account.Username,
		LoginTime: s.now().UTC(),
		IPAddress: clientIP,
		UserAgent: userAgent,
	}); err != nil {
		return nil, NewStorageError("登录失败", err)
	}

	return &dto.LoginResponse{
		Success: true,
		Message: "登录成功",
		Token:   token,
		User:    converter.AccountToSummary(account),
	}, nil
}

// 旧数据中的明文密码在登录成功后改写为哈希，失败不影响本次登录
func (s *AuthService) upgradePassword(ctx context.Context, account *db.Account, password string) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Warn("failed to hash legacy password")
		return
	}
	if err := s.repo.UpdateAccount(ctx, account.ID, entity.AccountUpdates{Password: &hashed}); err != nil {
		logrus.WithError(err).WithField("user_id", account.ID).Warn("failed to upgrade legacy password")
		return
	}
	account.Password = hashed
}

// Authenticate 解析令牌并确认账户仍然存在
func (s *AuthService) Authenticate(ctx context.Context, token string) (*db.Account, error) {
	if token == "" {
		return nil, NewAuthError("未提供认证令牌")
	}
	payload, err := s.tokens.Decode(token)
	if err != nil {
		return nil, NewAuthError("无效的认证令牌")
	}
	account, err := s.repo.GetAccountByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewAuthError("用户不存在")
		}
		return nil, NewStorageError("认证检查失败", err)
	}
	return account, nil
}

// CheckToken GET /api/auth
func (s *AuthService) CheckToken(ctx context.Context, token string) (*dto.TokenCheckResponse, error) {
	account, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	return &dto.TokenCheckResponse{
		Success:    true,
		User:       converter.AccountToSummary(account),
		TokenValid: true,
	}, nil
}

// UpdatePassword 校验原密码后写入新密码的哈希
func (s *AuthService) UpdatePassword(ctx context.Context, req dto.PasswordUpdateRequest) error {
	if req.Username == "" || req.OldPassword == "" || req.NewPassword == "" {
		return NewValidationError("所有字段都不能为空")
	}
	if len([]rune(req.NewPassword)) < minPasswordLength {
		return NewValidationError("新密码长度不能少于6位")
	}
	if len(req.NewPassword) > auth.MaxPasswordBytes {
		return NewValidationError("新密码长度不能超过72字节")
	}

	account, err := s.repo.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewAuthError("用户名或原密码错误")
		}
		return NewStorageError("密码更新失败", err)
	}
	if _, err := auth.VerifyPassword(account.Password, req.OldPassword); err != nil {
		return NewAuthError("用户名或原密码错误")
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return NewStorageError("密码更新失败", err)
	}
	if err := s.repo.UpdateAccount(ctx, account.ID, entity.AccountUpdates{Password: &hashed}); err != nil {
		return NewStorageError("密码更新失败", err)
	}
	return nil
}
