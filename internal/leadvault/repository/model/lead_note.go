package model

import (
	"time"
)

// LeadNote 线索备注表
// 备注写入后不可修改，没有 updated_at，恢复时只补缺失的行
type LeadNote struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // note-{递增 ID}
	LeadID    string    `gorm:"type:text;not null;index:idx_lead_notes_lead_id;column:lead_id" json:"lead_id"`
	AuthorID  string    `gorm:"type:text;not null;column:author_id" json:"author_id"` // 关联 users.id
	Body      string    `gorm:"type:text;not null;column:body" json:"body"`
	CreatedAt time.Time `gorm:"type:datetime;not null;column:created_at;autoCreateTime:false" json:"created_at"`
}

// TableName 指定表名
func (LeadNote) TableName() string {
	return "lead_notes"
}

// RecordID 返回主键
func (n *LeadNote) RecordID() string {
	return n.ID
}

// UpdatedTime 备注不可修改，没有可比较的时间戳
func (n *LeadNote) UpdatedTime() (time.Time, bool) {
	return time.Time{}, false
}
