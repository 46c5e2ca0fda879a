package service

import (
	"bookmarks/internal/entity/dto"
	"bookmarks/internal/model"
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// InitService 系统初始化检查与引导操作。repo 为 nil 表示未配置数据库。
type InitService struct {
	repo model.Repository
	now  func() time.Time
}

// NewInitService 创建初始化服务
func NewInitService(repo model.Repository) *InitService {
	return &InitService{repo: repo, now: time.Now}
}

// Status 依次检查数据库绑定、连接、表和管理员账户，返回第一个未通过的步骤
func (s *InitService) Status(ctx context.Context) *dto.InitStatus {
	status := &dto.InitStatus{Success: true, Timestamp: s.now().UTC()}

	if s.repo == nil {
		status.NextStep = dto.NextStepBindDatabase
		status.Message = "数据库未绑定。请设置 DB_TYPE 及连接参数后重启服务。"
		return status
	}
	status.Checks.DatabaseBinding = true

	if err := s.repo.Ping(ctx); err != nil {
		if ctx.Err() != nil {
			return s.checkFailed(status, err)
		}
		logrus.WithError(err).Warn("init check: database ping failed")
		status.NextStep = dto.NextStepCheckDatabase
		status.Message = "数据库连接失败。请检查数据库配置。"
		return status
	}
	status.Checks.DatabaseConnection = true

	missing, err := s.repo.MissingTables(ctx)
	if err != nil && ctx.Err() != nil {
		return s.checkFailed(status, err)
	}
	if err != nil || len(missing) > 0 {
		status.NextStep = dto.NextStepInitDatabase
		status.Message = "数据库表未创建。需要初始化数据库表结构。"
		if err != nil {
			status.Message = "无法检查数据库表。需要初始化数据库。"
		}
		return status
	}
	status.Checks.TablesExist = true

	exists, err := s.repo.AdminExists(ctx)
	if err != nil && ctx.Err() != nil {
		return s.checkFailed(status, err)
	}
	if err != nil || !exists {
		status.NextStep = dto.NextStepCreateAdmin
		status.Message = "管理员账户未创建。需要创建默认管理员账户。"
		return status
	}
	status.Checks.AdminAccount = true

	status.NextStep = dto.NextStepReady
	status.Message = "系统已就绪，可以正常使用。"
	return status
}

// checkFailed 请求超时或被取消时无法判断系统状态，返回 error 步骤
func (s *InitService) checkFailed(status *dto.InitStatus, err error) *dto.InitStatus {
	logrus.WithError(err).Error("init check aborted")
	status.Success = false
	status.NextStep = dto.NextStepError
	status.Message = "系统检查失败: " + err.Error()
	return status
}

// Run 执行 POST /api/init 的动作
func (s *InitService) Run(ctx context.Context, action string) (*dto.InitActionResponse, error) {
	if s.repo == nil {
		return nil, NewValidationError("数据库未绑定，请先配置数据库")
	}

	switch action {
	case dto.InitActionInitDatabase:
		if err := s.repo.CreateTables(ctx); err != nil {
			return nil, NewStorageError("数据库初始化失败", err)
		}
		return &dto.InitActionResponse{
			Success: true,
			Message: "数据库表创建成功",
			Action:  action,
			Details: fmt.Sprintf("已创建 %d 张表及索引", len(model.ManagedTables())),
		}, nil

	case dto.InitActionCreateAdmin:
		created, err := s.repo.SeedAdmin(ctx)
		if err != nil {
			return nil, NewStorageError("创建管理员账户失败", err)
		}
		message := "管理员账户已存在"
		if created {
			message = "默认管理员账户创建成功"
		}
		return &dto.InitActionResponse{Success: true, Message: message, Action: action}, nil

	case dto.InitActionCreateSampleData:
		count, err := model.SeedSampleBookmarks(ctx, s.repo)
		if err != nil {
			return nil, NewStorageError("创建示例数据失败", err)
		}
		if count == 0 {
			return &dto.InitActionResponse{
				Success: true,
				Message: "数据库中已有数据，跳过示例数据创建",
				Action:  action,
			}, nil
		}
		return &dto.InitActionResponse{
			Success: true,
			Message: fmt.Sprintf("成功创建 %d 条示例书签数据", count),
			Action:  action,
			Count:   count,
		}, nil

	default:
		return nil, NewValidationError("不支持的初始化操作")
	}
}
