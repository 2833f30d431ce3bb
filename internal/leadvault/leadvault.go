// Package leadvault 提供 LeadVault 服务器的主入口和初始化逻辑
package leadvault

import (
	"context"
	"os"
	"time"

	"github.com/jimmicro/grace"
	"github.com/jimyag/leadvault/internal/leadvault/api"
	"github.com/jimyag/leadvault/internal/leadvault/config"
	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/jimyag/leadvault/internal/leadvault/service"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg  *config.Config
	api  *api.API
	repo *repository.Repository
}

func New(cfg *config.Config) (*Server, error) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger

	// 1. 打开数据库
	repo, err := repository.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("path", cfg.DBPath).Msg("Database opened")

	// 2. 创建备份服务
	backupService := service.NewBackupService(repo, cfg.BackupDir, cfg.UploadDir, cfg.BackupSettingsPath)

	// 3. 创建线索和统计服务
	leadService := service.NewLeadService(repo)
	statsService := service.NewStatsService(repo)

	// 4. 创建 API
	apiInstance, err := api.New(cfg.Address, backupService, leadService, statsService)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg:  cfg,
		api:  apiInstance,
		repo: repo,
	}
	return server, nil
}

func (s *Server) Run(ctx context.Context) error {
	// 使用 grace.Shepherd 管理服务生命周期
	services := []grace.Grace{
		s.api,
	}

	shepherd := grace.NewShepherd(
		services,
		grace.WithTimeout(30*time.Second),
		grace.WithLogger(&zerologLogger{}),
	)

	shepherd.Start(ctx)
	return s.repo.Close()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.api.Shutdown(ctx)
}

// Name 实现 grace.Grace 接口
func (s *Server) Name() string {
	return "LeadVault Server"
}

// zerologLogger 实现 grace.Logger 接口
type zerologLogger struct{}

func (l *zerologLogger) Info(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Info()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}

func (l *zerologLogger) Error(msg string, args ...interface{}) {
	logger := zerolog.DefaultContextLogger.Error()
	// 如果有参数，使用 Msgf 格式化消息
	if len(args) > 0 {
		logger.Msgf(msg, args...)
	} else {
		logger.Msg(msg)
	}
}
