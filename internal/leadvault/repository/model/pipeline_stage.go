package model

import (
	"time"
)

// PipelineStage 销售流程阶段表
type PipelineStage struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // stage-{uuid}
	Name      string    `gorm:"type:text;not null;column:name" json:"name"`
	Position  int       `gorm:"type:integer;not null;column:position" json:"position"` // 阶段在流程中的顺序
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (PipelineStage) TableName() string {
	return "pipeline_stages"
}

// RecordID 返回主键
func (p *PipelineStage) RecordID() string {
	return p.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (p *PipelineStage) UpdatedTime() (time.Time, bool) {
	return p.UpdatedAt, !p.UpdatedAt.IsZero()
}
