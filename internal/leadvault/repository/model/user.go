package model

import (
	"time"
)

// User 用户表
// ManagerID 指向同表的另一行（汇报关系），恢复时需要两阶段处理：
// 先不带 manager_id 插入缺失的行，再回填引用
type User struct {
	ID        string    `gorm:"primaryKey;type:text;column:id" json:"id"` // usr-{递增 ID}
	Name      string    `gorm:"type:text;not null;column:name" json:"name"`
	Email     string    `gorm:"type:text;not null;uniqueIndex:idx_users_email;column:email" json:"email"`
	Role      string    `gorm:"type:text;not null;column:role" json:"role"` // admin, manager, agent
	ManagerID *string   `gorm:"type:text;index:idx_users_manager_id;column:manager_id" json:"manager_id,omitempty"`
	UpdatedAt time.Time `gorm:"type:datetime;not null;column:updated_at;autoUpdateTime:false" json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// RecordID 返回主键
func (u *User) RecordID() string {
	return u.ID
}

// UpdatedTime 返回用于恢复冲突比较的时间戳
func (u *User) UpdatedTime() (time.Time, bool) {
	return u.UpdatedAt, !u.UpdatedAt.IsZero()
}
