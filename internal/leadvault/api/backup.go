package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/leadvault/internal/leadvault/backup"
	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/service"
	"github.com/jimyag/leadvault/pkg/ginx"
	"github.com/rs/zerolog"
)

// BackupServiceInterface 定义备份服务接口
type BackupServiceInterface interface {
	CreateSnapshot(ctx context.Context, class backup.Class) (string, error)
	RestoreSnapshot(ctx context.Context, path string, onProgress backup.ProgressFunc) (*backup.RestoreResult, error)
	ListSnapshots(ctx context.Context) ([]backup.SnapshotInfo, error)
	DeleteSnapshot(ctx context.Context, path string) (bool, error)
	PruneRetention(ctx context.Context) error
}

type Backup struct {
	backupService BackupServiceInterface
}

func NewBackup(backupService *service.BackupService) *Backup {
	return &Backup{
		backupService: backupService,
	}
}

func (b *Backup) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create-backup", ginx.Adapt5(b.CreateBackup))
	router.POST("/restore-backup", ginx.Adapt5(b.RestoreBackup))
	router.POST("/list-backups", ginx.Adapt3(b.ListBackups))
	router.POST("/delete-backup", ginx.Adapt5(b.DeleteBackup))
	router.POST("/prune-backups", ginx.Adapt1(b.PruneBackups))
}

func (b *Backup) CreateBackup(ctx *gin.Context, req *entity.CreateBackupRequest) (*entity.CreateBackupResponse, error) {
	logger := zerolog.Ctx(ctx)

	class := backup.Class(req.Class)
	if class == "" {
		class = backup.ClassManual
	}
	logger.Info().Str("class", string(class)).Msg("API: CreateBackup called")

	path, err := b.backupService.CreateSnapshot(ctx, class)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create backup")
		return nil, err
	}

	return &entity.CreateBackupResponse{Path: path}, nil
}

func (b *Backup) RestoreBackup(ctx *gin.Context, req *entity.RestoreBackupRequest) (*entity.RestoreBackupResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("path", req.Path).Msg("API: RestoreBackup called")

	// 进度只记日志，回调不能阻塞恢复
	onProgress := func(phase string, percent int) {
		logger.Info().Str("phase", phase).Int("percent", percent).Msg("Restore progress")
	}

	result, err := b.backupService.RestoreSnapshot(ctx, req.Path, onProgress)
	if err != nil {
		logger.Error().Err(err).Msg("Restore failed")
		return nil, err
	}

	return &entity.RestoreBackupResponse{Result: result}, nil
}

func (b *Backup) ListBackups(ctx *gin.Context) (*entity.ListBackupsResponse, error) {
	snapshots, err := b.backupService.ListSnapshots(ctx)
	if err != nil {
		return nil, err
	}
	return &entity.ListBackupsResponse{Snapshots: snapshots}, nil
}

func (b *Backup) DeleteBackup(ctx *gin.Context, req *entity.DeleteBackupRequest) (*entity.DeleteBackupResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("path", req.Path).Msg("API: DeleteBackup called")

	deleted, err := b.backupService.DeleteSnapshot(ctx, req.Path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete backup")
		return nil, err
	}
	return &entity.DeleteBackupResponse{Deleted: deleted}, nil
}

func (b *Backup) PruneBackups(ctx *gin.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Info().Msg("API: PruneBackups called")

	return b.backupService.PruneRetention(ctx)
}
