package model

import (
	"time"
)

// Ticket 工单表
type Ticket struct {
	ID         string    `gorm:"primaryKey;type:text;column:id" json:"id"` // tkt-{递增 ID}
	LeadID     string    `gorm:"type:text;not null;index:idx_tickets_lead_id;column:lead_id" json:"lead_id"`
	Subject    string    `gorm:"type:text;not null;column:subject" json:"subject"`
	Status     string    `gorm:"type:text;not null;index:idx_tickets_status;column:status" json:"status"` // open, pending, closed
	AssigneeID *string   `gorm:"type:text;index:idx_tickets_assignee_id;column:assignee_id" json:"assignee_id,omitempty"` // 关联 users.id，处理人被删除时置空
	UpdatedAt  time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (Ticket) TableName() string {
	return "tickets"
}

// RecordID 返回主键
func (t *Ticket) RecordID() string {
	return t.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (t *Ticket) UpdatedTime() (time.Time, bool) {
	return t.UpdatedAt, !t.UpdatedAt.IsZero()
}
