package cmd

import (
	"bookmarks/internal/service"
	"bookmarks/internal/storage"
	"fmt"

	"github.com/spf13/cobra"
)

var dailyBackup bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "把全部书签以 JSON 快照写入 STORAGE_TYPE 指定的存储",
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := requireRepository()
		if err != nil {
			return err
		}
		store, err := storage.NewStorage(cfg)
		if err != nil {
			return fmt.Errorf("初始化存储失败: %w", err)
		}
		resp, err := service.NewBackupService(r, store).Snapshot(cmd.Context(), dailyBackup)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", resp.Message, resp.Key)
		return nil
	},
}

func init() {
	backupCmd.Flags().BoolVar(&dailyBackup, "daily", false, "每天只保留一份快照，已存在时跳过")
}
