package entity

import (
	"fmt"

	"github.com/jimyag/leadvault/internal/leadvault/backup"
)

// CreateBackupRequest 创建备份请求
type CreateBackupRequest struct {
	Class string `json:"class,omitempty"` // daily, monthly, yearly, manual；默认 manual
}

// IsValid 校验保留类别
func (r *CreateBackupRequest) IsValid() error {
	switch backup.Class(r.Class) {
	case "", backup.ClassDaily, backup.ClassMonthly, backup.ClassYearly, backup.ClassManual:
		return nil
	default:
		return fmt.Errorf("invalid backup class: %s", r.Class)
	}
}

// CreateBackupResponse 创建备份响应
type CreateBackupResponse struct {
	Path string `json:"path"`
}

// RestoreBackupRequest 恢复备份请求
type RestoreBackupRequest struct {
	Path string `json:"path" binding:"required"`
}

// RestoreBackupResponse 恢复备份响应
type RestoreBackupResponse struct {
	Result *backup.RestoreResult `json:"result"`
}

// ListBackupsResponse 列举备份响应
type ListBackupsResponse struct {
	Snapshots []backup.SnapshotInfo `json:"snapshots"`
}

// DeleteBackupRequest 删除备份请求
type DeleteBackupRequest struct {
	Path string `json:"path" binding:"required"`
}

// DeleteBackupResponse 删除备份响应
type DeleteBackupResponse struct {
	Deleted bool `json:"deleted"`
}
