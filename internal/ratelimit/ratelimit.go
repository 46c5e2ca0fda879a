package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "bookmarks:ratelimit:"

// Counter 在时间窗口内累加计数，返回累加后的值
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter 基于 INCR + EXPIRE 的固定窗口计数
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter 创建 Redis 计数器
func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

// Incr 使用 Pipeline 执行 INCR 和 EXPIRE
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := r.client.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incrCmd.Result()
}

// Limiter 按 key 限制窗口内的请求次数
type Limiter struct {
	counter     Counter
	maxRequests int
	window      time.Duration
}

// New 创建限流器，maxRequests 和 window 必须为正数
func New(counter Counter, maxRequests int, window time.Duration) (*Limiter, error) {
	if counter == nil {
		return nil, errors.New("rate limit counter must not be nil")
	}
	if maxRequests <= 0 {
		return nil, errors.New("maxRequests must be positive")
	}
	if window <= 0 {
		return nil, errors.New("window duration must be positive")
	}
	return &Limiter{counter: counter, maxRequests: maxRequests, window: window}, nil
}

// Allow 计数一次并判断是否超出限制
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.counter.Incr(ctx, keyPrefix+key, l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.maxRequests), nil
}

// Options Redis 连接参数
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient 创建客户端并 Ping 一次确认可用
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
