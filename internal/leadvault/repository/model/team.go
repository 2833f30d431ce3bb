package model

import (
	"time"
)

// Team 团队表
type Team struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // team-{递增 ID}
	Name      string    `gorm:"type:text;not null;column:name" json:"name"`
	LeaderID  *string   `gorm:"type:text;index:idx_teams_leader_id;column:leader_id" json:"leader_id,omitempty"` // 关联 users.id，负责人被删除时置空
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (Team) TableName() string {
	return "teams"
}

// RecordID 返回主键
func (t *Team) RecordID() string {
	return t.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (t *Team) UpdatedTime() (time.Time, bool) {
	return t.UpdatedAt, !t.UpdatedAt.IsZero()
}
