package db

import "time"

// Account 表示持久化的管理员账户（auth 表）。
//
// Password 可能是 bcrypt 哈希，也可能是旧版写入的明文，校验逻辑见 auth.VerifyPassword。
type Account struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名。
func (Account) TableName() string {
	return "auth"
}

// LoginLog 登录审计日志，只追加，不更新。
type LoginLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_login_logs_user_id" json:"user_id"`
	Username  string    `gorm:"column:username;type:varchar(255);not null" json:"username"`
	LoginTime time.Time `gorm:"column:login_time;index:idx_login_logs_login_time" json:"login_time"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(255)" json:"ip_address"`
	UserAgent string    `gorm:"column:user_agent;type:text" json:"user_agent"`

	Account *Account `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名。
func (LoginLog) TableName() string {
	return "login_logs"
}
