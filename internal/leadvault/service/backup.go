package service

import (
	"context"

	"github.com/jimyag/leadvault/internal/leadvault/backup"
	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/rs/zerolog"
)

// BackupService 备份服务
// 外部调度器和管理 API 都通过它触发快照、恢复和清理
type BackupService struct {
	engine       *backup.Engine
	repo         *repository.Repository
	settingsPath string
}

// NewBackupService 创建备份服务
// backupDir 是快照根目录，uploadDir 是线上上传文件目录，
// settingsPath 是可选的 YAML 设置文件
func NewBackupService(repo *repository.Repository, backupDir, uploadDir, settingsPath string) *BackupService {
	store := backup.NewStore(backupDir)
	return &BackupService{
		engine:       backup.NewEngine(repo.DB(), store, uploadDir),
		repo:         repo,
		settingsPath: settingsPath,
	}
}

// Engine 返回底层备份引擎
func (s *BackupService) Engine() *backup.Engine {
	return s.engine
}

// settings 读取当前备份设置
func (s *BackupService) settings(ctx context.Context) backup.Settings {
	return backup.LoadSettings(ctx, s.repo.DB(), s.settingsPath)
}

// CreateSnapshot 创建一个快照，返回快照路径
func (s *BackupService) CreateSnapshot(ctx context.Context, class backup.Class) (string, error) {
	return s.engine.CreateSnapshot(ctx, class)
}

// RestoreSnapshot 把指定快照合并回当前数据库
// 调用方必须保证同一时间只有一个恢复在运行
func (s *BackupService) RestoreSnapshot(ctx context.Context, path string, onProgress backup.ProgressFunc) (*backup.RestoreResult, error) {
	return s.engine.Restore(ctx, path, onProgress)
}

// ListSnapshots 列出所有完整的快照
func (s *BackupService) ListSnapshots(ctx context.Context) ([]backup.SnapshotInfo, error) {
	return s.engine.Store().List()
}

// DeleteSnapshot 删除一个快照
func (s *BackupService) DeleteSnapshot(ctx context.Context, path string) (bool, error) {
	return s.engine.Store().Delete(path)
}

// PruneRetention 对所有保留类别执行“保留最近 N 个”清理
func (s *BackupService) PruneRetention(ctx context.Context) error {
	settings := s.settings(ctx)
	for _, class := range []backup.Class{backup.ClassDaily, backup.ClassMonthly, backup.ClassYearly} {
		if _, err := s.engine.Store().Prune(ctx, class, settings.RetainFor(class)); err != nil {
			return err
		}
	}
	return nil
}

// RunScheduled 外部定时器的入口：检查开关、创建快照、清理过期快照
// 备份被禁用时什么都不做
func (s *BackupService) RunScheduled(ctx context.Context, class backup.Class) error {
	logger := zerolog.Ctx(ctx)

	settings := s.settings(ctx)
	if !settings.Enabled {
		logger.Info().Str("class", string(class)).Msg("Backups disabled, skipping scheduled snapshot")
		return nil
	}

	path, err := s.engine.CreateSnapshot(ctx, class)
	if err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("Scheduled snapshot created")

	if _, err := s.engine.Store().Prune(ctx, class, settings.RetainFor(class)); err != nil {
		// 清理失败不影响已经建好的快照
		logger.Warn().Err(err).Str("class", string(class)).Msg("Retention pruning failed")
	}
	return nil
}
