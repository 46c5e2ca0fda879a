package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// DefaultJWTSecret 与 JWT_SECRET 的 envDefault 保持一致
const DefaultJWTSecret = "dev-secret-change-me"

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DBType 为空时视为数据库未绑定，/api/init 会返回 bind_database
	DBType     string `env:"DB_TYPE" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DB_USER" envDefault:""`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBAddr     string `env:"DB_ADDR" envDefault:""`
	DBName     string `env:"DB_NAME" envDefault:"bookmarks"`
	DBPath     string `env:"DB_PATH" envDefault:"datas/bookmarks.db"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	// 默认管理员账户，仅在 auth 表中不存在该用户名时写入
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// TokenMode: jwt 为签名令牌，legacy 为兼容旧版的 base64 JSON 令牌（不防篡改）
	TokenMode       string `env:"TOKEN_MODE" envDefault:"jwt"`
	JWTSecret       string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer       string `env:"JWT_ISSUER" envDefault:"bookmarks"`
	TokenTTLMinutes int    `env:"TOKEN_TTL_MINUTES" envDefault:"1440"`

	// ProtectWrites 为 true 时书签写操作需要 Bearer 令牌
	ProtectWrites bool `env:"PROTECT_WRITES" envDefault:"false"`

	// 登录限流，RedisAddr 为空时关闭
	RedisAddr        string `env:"REDIS_ADDR" envDefault:""`
	RedisPassword    string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
	LoginRateLimit   int    `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindowS int    `env:"LOGIN_RATE_WINDOW_SECONDS" envDefault:"60"`

	LoginLogRetentionDays int `env:"LOGIN_LOG_RETENTION_DAYS" envDefault:"30"`

	StorageType     string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/backups"`

	// S3 兼容存储配置
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 存储配置
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 存储配置
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2 存储配置
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`
}

// ParseConfig 加载 .env（若存在）后解析环境变量
func ParseConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env file")
	}
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf)
	return Conf, nil
}

// UsesDefaultJWTSecret jwt 模式下仍在使用内置的默认密钥
func (c Config) UsesDefaultJWTSecret() bool {
	return (c.TokenMode == "" || c.TokenMode == "jwt") && c.JWTSecret == DefaultJWTSecret
}
