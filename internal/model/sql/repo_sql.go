package sql

import (
	"errors"
	"sync"
	"sync/atomic"

	"gorm.io/gorm"
)

// ErrNotConfigured 未提供数据库连接
var ErrNotConfigured = errors.New("database is not configured")

// AdminSeed 默认管理员账户，表初始化时若不存在则写入
type AdminSeed struct {
	Username string
	Password string
}

// GormRepository implements Repository using GORM
type GormRepository struct {
	db    *gorm.DB
	admin AdminSeed

	// ready 为 true 表示本进程内已完成建表和种子数据
	ready  atomic.Bool
	initMu sync.Mutex
}

// NewGormRepository creates a new repository instance
func NewGormRepository(db *gorm.DB, admin AdminSeed) (*GormRepository, error) {
	if db == nil {
		return nil, ErrNotConfigured
	}
	if admin.Username == "" {
		admin.Username = "admin"
	}
	if admin.Password == "" {
		admin.Password = "admin123"
	}
	return &GormRepository{db: db, admin: admin}, nil
}
