package sql

import (
	"bookmarks/internal/auth"
	"bookmarks/internal/entity/db"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ManagedTables 服务依赖的全部表
var ManagedTables = []string{"bookmarks", "auth", "login_logs"}

// InitializeTables 建表并写入默认管理员。本进程首次成功后再调用直接返回，
// 可以放在每个请求前执行。
func (r *GormRepository) InitializeTables(ctx context.Context) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if r.ready.Load() {
		return nil
	}

	r.initMu.Lock()
	defer r.initMu.Unlock()
	if r.ready.Load() {
		return nil
	}

	if err := r.CreateTables(ctx); err != nil {
		return err
	}
	if _, err := r.SeedAdmin(ctx); err != nil {
		return err
	}
	r.ready.Store(true)
	return nil
}

// CreateTables 迁移三张表及其索引，可重复执行
func (r *GormRepository) CreateTables(ctx context.Context) error {
	if r == nil || r.db == nil {
		return ErrNotConfigured
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&db.Account{}, &db.Bookmark{}, &db.LoginLog{}); err != nil {
		logrus.WithError(err).Error("failed to migrate schema")
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedAdmin 默认管理员不存在时创建，返回是否新建
func (r *GormRepository) SeedAdmin(ctx context.Context) (bool, error) {
	exists, err := r.AdminExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	hashed, err := auth.HashPassword(r.admin.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}
	account := &db.Account{Username: r.admin.Username, Password: hashed}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		logrus.WithError(err).Error("failed to create default admin")
		return false, fmt.Errorf("failed to create default admin: %w", err)
	}
	logrus.WithField("username", account.Username).Info("default admin account created")
	return true, nil
}

// AdminExists 检查默认管理员账户是否存在
func (r *GormRepository) AdminExists(ctx context.Context) (bool, error) {
	if r == nil || r.db == nil {
		return false, ErrNotConfigured
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&db.Account{}).Where("username = ?", r.admin.Username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ping 检查数据库连接
func (r *GormRepository) Ping(ctx context.Context) error {
	_, err := r.Query(ctx, "SELECT 1 AS ok")
	return err
}

// MissingTables 返回尚未创建的表名
func (r *GormRepository) MissingTables(ctx context.Context) ([]string, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	migrator := r.db.WithContext(ctx).Migrator()
	missing := make([]string, 0, len(ManagedTables))
	for _, name := range ManagedTables {
		if !migrator.HasTable(name) {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

// TableCounts 各表行数。表不存在时计数为 0。
func (r *GormRepository) TableCounts(ctx context.Context) ([]db.TableCount, error) {
	if r == nil || r.db == nil {
		return nil, ErrNotConfigured
	}
	counts := make([]db.TableCount, 0, len(ManagedTables))
	for _, name := range ManagedTables {
		// 表名来自固定列表，不接受外部输入
		row, ok := r.QueryFirst(ctx, "SELECT COUNT(*) AS count FROM "+name)
		var n int64
		if ok {
			n = row.Int64("count")
		}
		counts = append(counts, db.TableCount{Name: name, Count: n})
	}
	return counts, nil
}
