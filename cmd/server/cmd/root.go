package cmd

import (
	"bookmarks/internal/config"
	"bookmarks/internal/model"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfg  config.Config
	repo model.Repository

	httpPort string
)

var rootCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "书签导航服务",
	Long: `书签导航服务的后端：浏览器扩展同步、分页查询、分类统计和管理员登录。

不带子命令时等同于 serve。`,
	PersistentPreRunE: setupApp,
	RunE:              runServe,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute 执行命令，出错时以状态码 1 退出
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("command failed")
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.ParseConfig()
	if err != nil {
		return fmt.Errorf("加载配置失败: %w", err)
	}
	if httpPort != "" {
		cfg.HTTPPort = httpPort
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.UsesDefaultJWTSecret() {
		logrus.Warn("JWT_SECRET is using the built-in default, set a private secret before exposing the service")
	}

	repo, err = model.InitRepository(&cfg)
	if err != nil {
		return fmt.Errorf("初始化数据库失败: %w", err)
	}
	if repo == nil {
		logrus.Warn("DB_TYPE is empty, database is not configured")
	}
	return nil
}

// requireRepository 命令行任务必须有可用的数据库
func requireRepository() (model.Repository, error) {
	if repo == nil {
		return nil, errors.New("数据库未配置，请设置 DB_TYPE")
	}
	return repo, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpPort, "port", "", "HTTP 监听端口，覆盖 HTTP_PORT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsCleanupCmd)
	rootCmd.AddCommand(backupCmd)
}
