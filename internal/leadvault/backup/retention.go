package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Prune 对一个保留类别执行“保留最近 N 个”清理
// 按目录修改时间降序排序，删除第 N 个之后的所有快照目录
// 幂等，可以反复执行；keep <= 0 时不做任何删除
func (s *Store) Prune(ctx context.Context, class Class, keep int) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if keep <= 0 {
		return nil, nil
	}

	dir := s.classDir(class)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read class directory %s: %w", dir, err)
	}

	type folder struct {
		path    string
		modTime time.Time
	}
	var folders []folder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			logger.Warn().Err(err).Str("name", entry.Name()).Msg("Skipping folder, stat failed")
			continue
		}
		folders = append(folders, folder{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].modTime.After(folders[j].modTime)
	})

	var removed []string
	for _, f := range folders[min(keep, len(folders)):] {
		if err := os.RemoveAll(f.path); err != nil {
			return removed, fmt.Errorf("remove old snapshot %s: %w", f.path, err)
		}
		logger.Info().Str("path", f.path).Str("class", string(class)).Msg("Old snapshot pruned")
		removed = append(removed, f.path)
	}
	return removed, nil
}
