package backup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// CopyMode 文件树复制模式
type CopyMode int

const (
	// CopyOverwrite 建快照方向：无条件覆盖目标
	CopyOverwrite CopyMode = iota
	// CopyIfNewer 恢复方向：目标缺失或源文件严格更新时才复制
	// 避免覆盖快照之后才上传的生产文件
	CopyIfNewer
)

// CopyStats 文件树复制统计
type CopyStats struct {
	Copied  int `json:"copied"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// CopyTree 递归镜像 src 到 dst
// 单个文件复制失败只记日志并跳过，不会中止整棵树；源目录不存在视为无事可做
func CopyTree(ctx context.Context, src, dst string, mode CopyMode) (CopyStats, error) {
	logger := zerolog.Ctx(ctx)
	var stats CopyStats

	if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
		return stats, nil
	}

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 目录项读取失败不终止整棵树
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			stats.Failed++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", target, err)
			}
			return nil
		}

		srcInfo, err := d.Info()
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Skipping file, stat failed")
			stats.Failed++
			return nil
		}

		if mode == CopyIfNewer {
			if dstInfo, err := os.Stat(target); err == nil {
				// 目标已存在且不旧于源文件，跳过
				if !srcInfo.ModTime().After(dstInfo.ModTime()) {
					stats.Skipped++
					return nil
				}
			}
		}

		if err := copyFile(path, target, srcInfo); err != nil {
			logger.Warn().Err(err).Str("src", path).Str("dst", target).Msg("File copy failed, skipping")
			stats.Failed++
			return nil
		}
		stats.Copied++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", src, err)
	}
	return stats, nil
}

// copyFile 复制单个文件并保留修改时间，修改时间是增量复制判断的依据
func copyFile(src, dst string, srcInfo fs.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}
