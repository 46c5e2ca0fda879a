package cmd

import (
	"bookmarks/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

var cleanupDays int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "登录日志维护",
}

var logsCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "删除指定天数之前的登录日志",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := requireRepository()
		if err != nil {
			return err
		}
		days := cleanupDays
		if days < 1 {
			days = cfg.LoginLogRetentionDays
		}
		resp, err := service.NewMaintenanceService(r).CleanupLogs(cmd.Context(), days)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil
	},
}

func init() {
	logsCleanupCmd.Flags().IntVar(&cleanupDays, "days", 0, "保留天数，默认取 LOGIN_LOG_RETENTION_DAYS")
}
