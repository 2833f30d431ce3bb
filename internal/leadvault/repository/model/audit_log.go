package model

import (
	"time"
)

// AuditLog 审计日志表
// 审计记录不可修改，没有 updated_at，恢复时只补缺失的行
type AuditLog struct {
	ID         string    `gorm:"primaryKey;type:text;column:id" json:"id"` // aud-{递增 ID}
	ActorID    string    `gorm:"type:text;not null;column:actor_id" json:"actor_id"`
	Action     string    `gorm:"type:text;not null;column:action" json:"action"` // create, update, delete, restore
	EntityType string    `gorm:"type:text;not null;index:idx_audit_logs_entity;column:entity_type" json:"entity_type"`
	EntityID   string    `gorm:"type:text;not null;index:idx_audit_logs_entity;column:entity_id" json:"entity_id"`
	CreatedAt  time.Time `gorm:"type:datetime;not null;column:created_at;autoCreateTime:false" json:"created_at"`
}

// TableName 指定表名
func (AuditLog) TableName() string {
	return "audit_logs"
}

// RecordID 返回主键
func (a *AuditLog) RecordID() string {
	return a.ID
}

// UpdatedTime 审计日志不可修改，没有可比较的时间戳
func (a *AuditLog) UpdatedTime() (time.Time, bool) {
	return time.Time{}, false
}
