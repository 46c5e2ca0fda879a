package cmd

import (
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/service"
	"fmt"

	"github.com/spf13/cobra"
)

var withSampleData bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "创建数据库表和默认管理员账户",
	Long: `init 依次执行：
	1. 创建 bookmarks、auth、login_logs 三张表及索引
	2. 创建默认管理员账户（ADMIN_USERNAME / ADMIN_PASSWORD）
	3. 指定 --sample 时在空库中写入示例书签

可以重复执行，已存在的表和账户不会被覆盖。`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := requireRepository()
		if err != nil {
			return err
		}
		svc := service.NewInitService(r)

		actions := []string{dto.InitActionInitDatabase, dto.InitActionCreateAdmin}
		if withSampleData {
			actions = append(actions, dto.InitActionCreateSampleData)
		}
		for _, action := range actions {
			resp, err := svc.Run(cmd.Context(), action)
			if err != nil {
				return err
			}
			fmt.Println(resp.Message)
		}

		status := svc.Status(cmd.Context())
		fmt.Printf("当前状态: %s (%s)\n", status.NextStep, status.Message)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&withSampleData, "sample", false, "写入示例书签")
}
