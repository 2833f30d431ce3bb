package backup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"gorm.io/gorm"
)

// Record 可参与备份恢复的实体必须实现的最小接口
type Record interface {
	// RecordID 返回主键，用于恢复时的存在性查找
	RecordID() string
	// UpdatedTime 返回用于冲突比较的时间戳
	// 不可变实体（备注、审计日志）返回 false，恢复时永不更新既有行
	UpdatedTime() (time.Time, bool)
}

// recordPtr 约束 PT 为实现了 Record 的 *T
type recordPtr[T any] interface {
	*T
	Record
}

// selfRefOps 自引用实体的专用操作
// column 指向同表另一行的可空外键列
type selfRefOps struct {
	column string
	// value 返回快照记录的自引用值（拷贝，strip 不会影响它）
	value func(rec Record) *string
	// strip 清掉自引用字段，第一遍插入前调用
	strip func(rec Record)
	// apply 当现有行该列仍为 NULL 时回填引用，返回受影响的行数
	apply func(ctx context.Context, db *gorm.DB, id, ref string) (int64, error)
}

// tableOps 一张实体表的类型化操作集合
// 在启动时构建一次，恢复引擎按它进行插入/更新/查找，避免运行时反射分发
type tableOps struct {
	name        string
	pkColumn    string
	timestamped bool
	selfRef     *selfRefOps

	export func(ctx context.Context, db *gorm.DB) ([]Record, error)
	decode func(data json.RawMessage) ([]Record, error)
	lookup func(ctx context.Context, db *gorm.DB, id string) (Record, error)
	insert func(ctx context.Context, db *gorm.DB, rec Record) error
	update func(ctx context.Context, db *gorm.DB, rec Record) error
}

// tableFor 为模型类型 T 构建类型化的表操作
func tableFor[T any, PT recordPtr[T]](name, pkColumn string, timestamped bool) *tableOps {
	wrap := func(rows []T) []Record {
		records := make([]Record, len(rows))
		for i := range rows {
			records[i] = PT(&rows[i])
		}
		return records
	}

	return &tableOps{
		name:        name,
		pkColumn:    pkColumn,
		timestamped: timestamped,
		export: func(ctx context.Context, db *gorm.DB) ([]Record, error) {
			var rows []T
			if err := db.WithContext(ctx).Order(pkColumn).Find(&rows).Error; err != nil {
				return nil, err
			}
			return wrap(rows), nil
		},
		decode: func(data json.RawMessage) ([]Record, error) {
			var rows []T
			if err := json.Unmarshal(data, &rows); err != nil {
				return nil, err
			}
			return wrap(rows), nil
		},
		lookup: func(ctx context.Context, db *gorm.DB, id string) (Record, error) {
			var row T
			err := db.WithContext(ctx).Where(pkColumn+" = ?", id).First(&row).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return PT(&row), nil
		},
		insert: func(ctx context.Context, db *gorm.DB, rec Record) error {
			return db.WithContext(ctx).Create(rec).Error
		},
		update: func(ctx context.Context, db *gorm.DB, rec Record) error {
			// Select("*") 保证零值字段也会按快照写入
			return db.WithContext(ctx).Model(rec).Select("*").Updates(rec).Error
		},
	}
}

// repairRule 引用修复规则：子表的某个可空外键列指向父表
// 父行曾被删除（外键置空）又被恢复时，按快照回填子行的引用
type repairRule struct {
	table    string
	column   string
	refTable string
	// value 返回快照子记录的外键值
	value func(rec Record) *string
	// apply 当现有子行该列仍为 NULL 时写入快照值，返回受影响的行数
	apply func(ctx context.Context, db *gorm.DB, id, ref string) (int64, error)
}

// Registry 实体表注册表
// tables 的顺序就是导出和恢复的依赖顺序（父表在前），顺序是正确性要求
type Registry struct {
	tables      []*tableOps
	byName      map[string]*tableOps
	repairRules []repairRule
}

// Tables 返回依赖顺序的表操作列表
func (r *Registry) Tables() []*tableOps {
	return r.tables
}

// nullableRef 拷贝可空引用，避免后续修改快照记录影响已捕获的值
func nullableRef(v *string) *string {
	if v == nil {
		return nil
	}
	ref := *v
	return &ref
}

// backfillColumn 生成“该列为 NULL 时才写入”的回填操作
func backfillColumn[T any](column string) func(ctx context.Context, db *gorm.DB, id, ref string) (int64, error) {
	return func(ctx context.Context, db *gorm.DB, id, ref string) (int64, error) {
		var m T
		res := db.WithContext(ctx).Model(&m).
			Where("id = ? AND "+column+" IS NULL", id).
			Update(column, ref)
		return res.RowsAffected, res.Error
	}
}

// NewRegistry 构建 LeadVault 的实体注册表
// 依赖顺序：设置和流程配置 → 用户 → 团队 → 营销活动 → 线索 → 工单/备注/审计
func NewRegistry() *Registry {
	settings := tableFor[model.Setting]("settings", "key", true)
	stages := tableFor[model.PipelineStage]("pipeline_stages", "id", true)

	// users 通过 manager_id 自引用，两遍处理且只补缺失的行
	users := tableFor[model.User]("users", "id", true)
	users.selfRef = &selfRefOps{
		column: "manager_id",
		value: func(rec Record) *string {
			return nullableRef(rec.(*model.User).ManagerID)
		},
		strip: func(rec Record) {
			rec.(*model.User).ManagerID = nil
		},
		apply: backfillColumn[model.User]("manager_id"),
	}

	teams := tableFor[model.Team]("teams", "id", true)
	campaigns := tableFor[model.Campaign]("campaigns", "id", true)
	leads := tableFor[model.Lead]("leads", "id", true)
	tickets := tableFor[model.Ticket]("tickets", "id", true)
	notes := tableFor[model.LeadNote]("lead_notes", "id", false)
	audits := tableFor[model.AuditLog]("audit_logs", "id", false)

	r := &Registry{
		tables: []*tableOps{
			settings, stages, users, teams, campaigns, leads, tickets, notes, audits,
		},
		byName: make(map[string]*tableOps),
		// 引用修复只针对“删除时置空”的 users 外键
		repairRules: []repairRule{
			{
				table:    "teams",
				column:   "leader_id",
				refTable: "users",
				value: func(rec Record) *string {
					return nullableRef(rec.(*model.Team).LeaderID)
				},
				apply: backfillColumn[model.Team]("leader_id"),
			},
			{
				table:    "campaigns",
				column:   "owner_id",
				refTable: "users",
				value: func(rec Record) *string {
					return nullableRef(rec.(*model.Campaign).OwnerID)
				},
				apply: backfillColumn[model.Campaign]("owner_id"),
			},
			{
				table:    "leads",
				column:   "owner_id",
				refTable: "users",
				value: func(rec Record) *string {
					return nullableRef(rec.(*model.Lead).OwnerID)
				},
				apply: backfillColumn[model.Lead]("owner_id"),
			},
			{
				table:    "tickets",
				column:   "assignee_id",
				refTable: "users",
				value: func(rec Record) *string {
					return nullableRef(rec.(*model.Ticket).AssigneeID)
				},
				apply: backfillColumn[model.Ticket]("assignee_id"),
			},
		},
	}
	for _, t := range r.tables {
		r.byName[t.name] = t
	}
	return r
}
