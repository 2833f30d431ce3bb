package model

import (
	"time"
)

// Campaign 营销活动表
type Campaign struct {
	ID        string     `gorm:"primaryKey;type:text;column:id" json:"id"` // cmp-{递增 ID}
	Name      string     `gorm:"type:text;not null;column:name" json:"name"`
	TeamID    string     `gorm:"type:text;index:idx_campaigns_team_id;column:team_id" json:"team_id"`                     // 关联 teams.id
	OwnerID   *string    `gorm:"type:text;index:idx_campaigns_owner_id;column:owner_id" json:"owner_id,omitempty"`        // 关联 users.id，负责人被删除时置空
	StartsAt  *time.Time `gorm:"type:datetime;column:starts_at;autoCreateTime:false" json:"starts_at,omitempty"`
	EndsAt    *time.Time `gorm:"type:datetime;column:ends_at;autoCreateTime:false" json:"ends_at,omitempty"`
	UpdatedAt time.Time  `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}

// RecordID 返回主键
func (c *Campaign) RecordID() string {
	return c.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (c *Campaign) UpdatedTime() (time.Time, bool) {
	return c.UpdatedAt, !c.UpdatedAt.IsZero()
}
