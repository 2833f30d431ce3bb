package backup

import (
	"time"
)

// Conflict 恢复过程中单条记录的冲突
// 合并策略拒绝覆盖现有数据时记录，不是错误
type Conflict struct {
	RecordID     string     `json:"record_id"`
	Reason       string     `json:"reason"`
	SnapshotTime *time.Time `json:"snapshot_time,omitempty"`
	CurrentTime  *time.Time `json:"current_time,omitempty"`
}

// TableReport 单个实体表的恢复报告
type TableReport struct {
	Table     string     `json:"table"`
	Inserted  int        `json:"inserted"`
	Updated   int        `json:"updated"`
	Skipped   int        `json:"skipped"`
	Conflicts []Conflict `json:"conflicts,omitempty"`
}

// RestoreResult 一次恢复的汇总结果
// 恢复中途失败时，已产生的部分报告仍然会附在结果里用于排查
type RestoreResult struct {
	Tables           []TableReport  `json:"tables"`
	Inserted         int            `json:"inserted"`
	Updated          int            `json:"updated"`
	Skipped          int            `json:"skipped"`
	ConflictCount    int            `json:"conflict_count"`
	RepairedRefs     map[string]int `json:"repaired_refs,omitempty"`
	Assets           CopyStats      `json:"assets"`
	SafetyBackupPath string         `json:"safety_backup_path,omitempty"`
	StartedAt        time.Time      `json:"started_at"`
	Duration         time.Duration  `json:"duration_ns"`
	Success          bool           `json:"success"`
	Error            string         `json:"error,omitempty"`
}

// finalize 汇总各表计数
func (r *RestoreResult) finalize() {
	r.Inserted, r.Updated, r.Skipped, r.ConflictCount = 0, 0, 0, 0
	for _, t := range r.Tables {
		r.Inserted += t.Inserted
		r.Updated += t.Updated
		r.Skipped += t.Skipped
		r.ConflictCount += len(t.Conflicts)
	}
}

// ProgressFunc 恢复进度回调，在命名检查点同步调用
// 回调不能阻塞，否则会卡住整个恢复
type ProgressFunc func(phase string, percent int)
