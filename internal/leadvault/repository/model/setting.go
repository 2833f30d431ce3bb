package model

import (
	"time"
)

// Setting 设置表
// 除业务开关外，备份引擎的配置（backup.enabled、backup.retain.* 等）也存储在这里
type Setting struct {
	Key       string    `gorm:"primaryKey;type:text;column:key" json:"key"`
	Value     string    `gorm:"type:text;not null;column:value" json:"value"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"` // 由业务层维护，恢复时按快照原样写入
}

// TableName 指定表名
func (Setting) TableName() string {
	return "settings"
}

// RecordID 返回主键，用于备份恢复时的存在性查找
func (s *Setting) RecordID() string {
	return s.Key
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (s *Setting) UpdatedTime() (time.Time, bool) {
	return s.UpdatedAt, !s.UpdatedAt.IsZero()
}
