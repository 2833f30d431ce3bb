package backup

import (
	"context"

	"github.com/rs/zerolog"
)

// repairReferences 合并完成后的引用修复
//
// 历史上按“删除时外键置空”策略删掉的父行被恢复之后，
// 引用它的子行外键仍然是空。对注册表里声明的每一对
// (子表, 外键列)：快照中该字段非空、父行现在存在、
// 且现有子行该字段为空时，把快照值回填进去。
// 永不覆盖非空值；单条失败只记日志。返回每个关系修复的行数，
// 仅用于可观测性，不计入恢复报告
func (e *Engine) repairReferences(ctx context.Context, dump *Dump) map[string]int {
	logger := zerolog.Ctx(ctx)
	repaired := make(map[string]int)

	for _, rule := range e.registry.repairRules {
		key := rule.table + "." + rule.column
		repaired[key] = 0

		raw, ok := dump.Tables[rule.table]
		if !ok {
			continue
		}
		child := e.registry.byName[rule.table]
		parent := e.registry.byName[rule.refTable]

		records, err := child.decode(raw)
		if err != nil {
			logger.Warn().Err(err).Str("table", rule.table).Msg("Reference repair skipped, dump not decodable")
			continue
		}

		for _, rec := range records {
			if ctx.Err() != nil {
				return repaired
			}

			ref := rule.value(rec)
			if ref == nil {
				continue
			}

			// 父行必须已经存在
			target, err := parent.lookup(ctx, e.db, *ref)
			if err != nil || target == nil {
				continue
			}

			n, err := rule.apply(ctx, e.db, rec.RecordID(), *ref)
			if err != nil {
				logger.Warn().Err(err).
					Str("table", rule.table).
					Str("id", rec.RecordID()).
					Str("ref", *ref).
					Msg("Reference repair failed for record")
				continue
			}
			if n > 0 {
				repaired[key]++
			}
		}

		if repaired[key] > 0 {
			logger.Info().Str("relation", key).Int("repaired", repaired[key]).Msg("References repaired")
		}
	}
	return repaired
}
