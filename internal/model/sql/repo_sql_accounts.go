package sql

import (
	"bookmarks/internal/entity"
	"bookmarks/internal/entity/db"
	"context"
	"fmt"
	"time"
)

// CreateAccount inserts a new account.
func (r *GormRepository) CreateAccount(ctx context.Context, account *db.Account) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if account == nil {
		return fmt.Errorf("account is nil")
	}
	return r.db.WithContext(ctx).Create(account).Error
}

// GetAccountByUsername 按用户名精确查询，不存在时返回 gorm.ErrRecordNotFound
func (r *GormRepository) GetAccountByUsername(ctx context.Context, username string) (*db.Account, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	var account db.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByID 按 id 查询
func (r *GormRepository) GetAccountByID(ctx context.Context, id uint) (*db.Account, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	var account db.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateAccount 更新账户字段
func (r *GormRepository) UpdateAccount(ctx context.Context, id uint, updates entity.AccountUpdates) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if id == 0 {
		return fmt.Errorf("invalid account id")
	}
	if updates.IsEmpty() {
		return fmt.Errorf("no updates provided")
	}
	return r.db.WithContext(ctx).Model(&db.Account{}).Where("id = ?", id).Updates(updates.ToMap()).Error
}

// CreateLoginLog 追加一条登录日志
func (r *GormRepository) CreateLoginLog(ctx context.Context, log *db.LoginLog) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if log == nil {
		return fmt.Errorf("login log is nil")
	}
	if log.LoginTime.IsZero() {
		log.LoginTime = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(log).Error
}

// ListLoginLogs 最近的登录日志，新的在前
func (r *GormRepository) ListLoginLogs(ctx context.Context, limit int) ([]db.LoginLog, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	logs := make([]db.LoginLog, 0, limit)
	if err := r.db.WithContext(ctx).
		Order("login_time DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// DeleteLoginLogsBefore 删除早于 cutoff 的登录日志
func (r *GormRepository) DeleteLoginLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil || r.db == nil {
		return 0, ErrNotConfigured
	}
	result := r.db.WithContext(ctx).Where("login_time < ?", cutoff).Delete(&db.LoginLog{})
	return result.RowsAffected, result.Error
}
