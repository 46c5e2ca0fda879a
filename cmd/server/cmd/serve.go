package cmd

import (
	"bookmarks/internal/api"
	"bookmarks/internal/ratelimit"
	"bookmarks/internal/storage"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	store, err := storage.NewStorage(cfg)
	if err != nil {
		return fmt.Errorf("初始化存储失败: %w", err)
	}

	limiter := newLoginLimiter(cmd.Context())

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, limiter)
	if err != nil {
		return fmt.Errorf("初始化 HTTP 处理器失败: %w", err)
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)
	r := api.NewRouter(httpHandler)

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("host", serverHost).Info("服务器启动")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("服务器启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logrus.Info("服务器关闭中")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newLoginLimiter 配置了 REDIS_ADDR 时启用登录限流，连接失败只记录警告
func newLoginLimiter(ctx context.Context) *ratelimit.Limiter {
	if cfg.RedisAddr == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := ratelimit.NewRedisClient(pingCtx, ratelimit.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		logrus.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, login rate limit disabled")
		return nil
	}
	limiter, err := ratelimit.New(ratelimit.NewRedisCounter(client), cfg.LoginRateLimit, time.Duration(cfg.LoginRateWindowS)*time.Second)
	if err != nil {
		logrus.WithError(err).Warn("invalid login rate limit settings, login rate limit disabled")
		_ = client.Close()
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"limit":  cfg.LoginRateLimit,
		"window": cfg.LoginRateWindowS,
	}).Info("login rate limit enabled")
	return limiter
}
