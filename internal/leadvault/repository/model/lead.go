package model

import (
	"time"
)

// Lead 线索表
type Lead struct {
	ID         string    `gorm:"primaryKey;type:text;column:id" json:"id"` // lead-{递增 ID}
	Name       string    `gorm:"type:text;not null;column:name" json:"name"`
	Email      string    `gorm:"type:text;column:email" json:"email"`
	Phone      string    `gorm:"type:text;column:phone" json:"phone"`
	Status     string    `gorm:"type:text;not null;index:idx_leads_status;column:status" json:"status"` // New, Contacted, Qualified, Won, Lost
	StageID    string    `gorm:"type:text;index:idx_leads_stage_id;column:stage_id" json:"stage_id"`    // 关联 pipeline_stages.id
	CampaignID string    `gorm:"type:text;index:idx_leads_campaign_id;column:campaign_id" json:"campaign_id"`
	OwnerID    *string   `gorm:"type:text;index:idx_leads_owner_id;column:owner_id" json:"owner_id,omitempty"` // 关联 users.id，负责人被删除时置空
	UpdatedAt  time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (Lead) TableName() string {
	return "leads"
}

// RecordID 返回主键
func (l *Lead) RecordID() string {
	return l.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (l *Lead) UpdatedTime() (time.Time, bool) {
	return l.UpdatedAt, !l.UpdatedAt.IsZero()
}
