package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrSafetyBackup 恢复前的安全备份创建失败
// 没有安全网的恢复会被整体拒绝
var ErrSafetyBackup = errors.New("safety backup failed")

// Engine 备份与恢复引擎
// 快照创建和恢复都是串行执行的长操作，引擎内部不做互斥，
// 由调用方保证同一数据库上同时只有一个恢复在运行
type Engine struct {
	db        *gorm.DB
	store     *Store
	registry  *Registry
	uploadDir string
}

// NewEngine 创建备份恢复引擎
func NewEngine(db *gorm.DB, store *Store, uploadDir string) *Engine {
	return &Engine{
		db:        db,
		store:     store,
		registry:  NewRegistry(),
		uploadDir: uploadDir,
	}
}

// Store 返回引擎使用的快照存储
func (e *Engine) Store() *Store {
	return e.store
}

// CreateSnapshot 创建一个新快照：导出全库 → 复制上传文件 → 最后写 manifest
// 任何一步失败都会清掉未完成的快照目录，不会留下可被误认为完整的快照
func (e *Engine) CreateSnapshot(ctx context.Context, class Class) (string, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	exporter := NewExporter(e.db, e.registry)
	dump, counts, err := exporter.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("export entities: %w", err)
	}

	path := e.store.PathFor(class, start)
	size, checksum, err := e.store.WriteDump(path, dump)
	if err != nil {
		e.cleanupPartial(ctx, path)
		return "", fmt.Errorf("write dump: %w", err)
	}

	stats, err := CopyTree(ctx, e.uploadDir, e.store.FilesDir(path), CopyOverwrite)
	if err != nil {
		e.cleanupPartial(ctx, path)
		return "", fmt.Errorf("copy assets: %w", err)
	}

	manifest := &Manifest{
		CreatedAt:     start,
		Class:         class,
		SizeBytes:     size,
		Checksum:      checksum,
		RecordCounts:  counts,
		FormatVersion: FormatVersion,
	}
	if err := e.store.WriteManifest(path, manifest); err != nil {
		e.cleanupPartial(ctx, path)
		return "", fmt.Errorf("write manifest: %w", err)
	}

	logger.Info().
		Str("path", path).
		Str("class", string(class)).
		Int64("sizeBytes", size).
		Int("assetsCopied", stats.Copied).
		Dur("elapsed", time.Since(start)).
		Msg("Snapshot created")
	return path, nil
}

// cleanupPartial 尽力清掉未完成的快照目录
func (e *Engine) cleanupPartial(ctx context.Context, path string) {
	if err := os.RemoveAll(path); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("Failed to clean up partial snapshot")
	}
}

// Restore 把快照非破坏性地合并回当前数据库
//
// 流程：强制安全备份 → 加载 dump → 按依赖顺序逐表合并 →
// 引用修复 → 按“目标缺失或源更新”复制文件 → 汇总结果
// 现有数据永远不会被删除；只有快照严格更新的行才会被更新
func (e *Engine) Restore(ctx context.Context, path string, onProgress ProgressFunc) (*RestoreResult, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()
	result := &RestoreResult{StartedAt: start}

	progress := func(phase string, percent int) {
		if onProgress != nil {
			onProgress(phase, percent)
		}
	}
	fail := func(err error) (*RestoreResult, error) {
		result.Error = err.Error()
		result.Duration = time.Since(start)
		result.finalize()
		logger.Error().Err(err).Str("path", path).Msg("Restore failed")
		return result, err
	}

	logger.Info().Str("path", path).Msg("Starting restore")

	// 1. 安全备份：恢复前先把当前状态存成 manual 快照，失败则整体中止
	progress("safety-backup", 0)
	safetyPath, err := e.CreateSnapshot(ctx, ClassManual)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrSafetyBackup, err))
	}
	result.SafetyBackupPath = safetyPath

	// 2. 加载目标快照
	progress("load", 5)
	dump, err := e.store.ReadDump(ctx, path)
	if err != nil {
		return fail(err)
	}

	// 3. 按依赖顺序逐表合并，父表在前，保证外键可解析
	tables := e.registry.Tables()
	for i, table := range tables {
		progress("merge:"+table.name, 10+(80*i)/len(tables))

		raw, ok := dump.Tables[table.name]
		if !ok {
			// 快照里没有这张表（旧格式快照），跳过
			continue
		}
		records, err := table.decode(raw)
		if err != nil {
			return fail(fmt.Errorf("decode table %s: %w", table.name, err))
		}

		var report TableReport
		if table.selfRef != nil {
			report, err = e.mergeSelfReferential(ctx, table, records)
		} else {
			report, err = e.mergeTable(ctx, table, records)
		}
		result.Tables = append(result.Tables, report)
		if err != nil {
			return fail(fmt.Errorf("merge table %s: %w", table.name, err))
		}
		logger.Info().
			Str("table", table.name).
			Int("inserted", report.Inserted).
			Int("updated", report.Updated).
			Int("skipped", report.Skipped).
			Int("conflicts", len(report.Conflicts)).
			Msg("Table merged")
	}

	// 4. 引用修复：回填因历史删除而置空、现在又能解析的外键
	progress("repair", 90)
	result.RepairedRefs = e.repairReferences(ctx, dump)

	// 5. 恢复上传文件，不覆盖快照之后更新过的文件
	progress("assets", 95)
	stats, err := CopyTree(ctx, e.store.FilesDir(path), e.uploadDir, CopyIfNewer)
	if err != nil {
		// 文件恢复失败不算恢复整体失败
		logger.Warn().Err(err).Msg("Asset restore incomplete")
	}
	result.Assets = stats

	result.finalize()
	result.Success = true
	result.Duration = time.Since(start)
	progress("done", 100)

	logger.Info().
		Int("inserted", result.Inserted).
		Int("updated", result.Updated).
		Int("skipped", result.Skipped).
		Int("conflicts", result.ConflictCount).
		Dur("elapsed", result.Duration).
		Msg("Restore finished")
	return result, nil
}

// mergeTable 通用单表合并
// 缺失的记录插入；已有的记录只有快照时间戳严格更新时才更新；
// 单条记录的失败转成冲突，不中止整表
func (e *Engine) mergeTable(ctx context.Context, table *tableOps, records []Record) (TableReport, error) {
	logger := zerolog.Ctx(ctx)
	report := TableReport{Table: table.name}

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		live, err := table.lookup(ctx, e.db, rec.RecordID())
		if err != nil {
			report.Conflicts = append(report.Conflicts, Conflict{
				RecordID: rec.RecordID(),
				Reason:   "lookup failed: " + err.Error(),
			})
			continue
		}

		// 不存在 → 原样插入
		if live == nil {
			if err := table.insert(ctx, e.db, rec); err != nil {
				logger.Warn().Err(err).
					Str("table", table.name).
					Str("id", rec.RecordID()).
					Msg("Insert failed, recording conflict")
				report.Conflicts = append(report.Conflicts, Conflict{
					RecordID: rec.RecordID(),
					Reason:   "insert failed: " + err.Error(),
				})
				continue
			}
			report.Inserted++
			continue
		}

		// 没有时间戳的实体无法比较来源，永不覆盖
		if !table.timestamped {
			report.Skipped++
			continue
		}

		snapTime, snapOK := rec.UpdatedTime()
		liveTime, liveOK := live.UpdatedTime()
		if !snapOK || !liveOK {
			// 任一侧缺少时间戳，宁可不覆盖
			report.Skipped++
			conflict := Conflict{
				RecordID: rec.RecordID(),
				Reason:   "no timestamp available for comparison",
			}
			if snapOK {
				conflict.SnapshotTime = &snapTime
			}
			if liveOK {
				conflict.CurrentTime = &liveTime
			}
			report.Conflicts = append(report.Conflicts, conflict)
			continue
		}

		switch {
		case snapTime.After(liveTime):
			if err := table.update(ctx, e.db, rec); err != nil {
				logger.Warn().Err(err).
					Str("table", table.name).
					Str("id", rec.RecordID()).
					Msg("Update failed, recording conflict")
				report.Conflicts = append(report.Conflicts, Conflict{
					RecordID:     rec.RecordID(),
					Reason:       "update failed: " + err.Error(),
					SnapshotTime: &snapTime,
					CurrentTime:  &liveTime,
				})
				continue
			}
			report.Updated++
		case liveTime.After(snapTime):
			report.Skipped++
			report.Conflicts = append(report.Conflicts, Conflict{
				RecordID:     rec.RecordID(),
				Reason:       "current data is newer",
				SnapshotTime: &snapTime,
				CurrentTime:  &liveTime,
			})
		default:
			// 时间戳相同不算冲突
			report.Skipped++
		}
	}
	return report, nil
}

// mergeSelfReferential 自引用实体的两遍合并
//
// 第一遍：去掉自引用字段后插入缺失的行；已有的行一律不更新（只补缺口，
// 避免覆盖线上的资料修改）。第二遍：对快照中自引用非空的记录，
// 如果被引用的行现在存在且现有行该字段仍为空，则回填引用
func (e *Engine) mergeSelfReferential(ctx context.Context, table *tableOps, records []Record) (TableReport, error) {
	logger := zerolog.Ctx(ctx)
	report := TableReport{Table: table.name}

	type pendingRef struct {
		id  string
		ref string
	}
	var pending []pendingRef

	// 第一遍：插入缺失的行，自引用先置空
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if ref := table.selfRef.value(rec); ref != nil {
			pending = append(pending, pendingRef{id: rec.RecordID(), ref: *ref})
		}

		live, err := table.lookup(ctx, e.db, rec.RecordID())
		if err != nil {
			report.Conflicts = append(report.Conflicts, Conflict{
				RecordID: rec.RecordID(),
				Reason:   "lookup failed: " + err.Error(),
			})
			continue
		}
		if live != nil {
			report.Skipped++
			continue
		}

		table.selfRef.strip(rec)
		if err := table.insert(ctx, e.db, rec); err != nil {
			logger.Warn().Err(err).
				Str("table", table.name).
				Str("id", rec.RecordID()).
				Msg("Insert failed, recording conflict")
			report.Conflicts = append(report.Conflicts, Conflict{
				RecordID: rec.RecordID(),
				Reason:   "insert failed: " + err.Error(),
			})
			continue
		}
		report.Inserted++
	}

	// 第二遍：回填自引用，目标不存在或现有值非空时静默跳过
	for _, p := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		target, err := table.lookup(ctx, e.db, p.ref)
		if err != nil || target == nil {
			continue
		}
		if _, err := table.selfRef.apply(ctx, e.db, p.id, p.ref); err != nil {
			logger.Warn().Err(err).
				Str("table", table.name).
				Str("id", p.id).
				Str("ref", p.ref).
				Msg("Self-reference backfill failed")
		}
	}
	return report, nil
}
