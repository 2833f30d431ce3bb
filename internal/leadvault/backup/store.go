package backup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Class 快照保留类别，决定命名和清理策略
type Class string

const (
	ClassDaily   Class = "daily"
	ClassMonthly Class = "monthly"
	ClassYearly  Class = "yearly"
	// ClassManual 手动/安全快照，存放在 daily 目录下
	ClassManual Class = "manual"
)

const (
	dumpFileName     = "dump.json"
	manifestFileName = "manifest.json"
	filesDirName     = "files"

	// FormatVersion 快照格式版本
	FormatVersion = "1"
)

// ErrDumpMissing 目标快照的 dump 文件缺失
// 属于配置错误而不是冲突，恢复立即失败
var ErrDumpMissing = errors.New("snapshot dump file missing")

// Manifest 快照元数据，在 dump 和文件全部写完之后最后写入
// manifest 的存在即表示快照完整可用
type Manifest struct {
	CreatedAt     time.Time      `json:"created_at"`
	Class         Class          `json:"class"`
	SizeBytes     int64          `json:"size_bytes"`
	Checksum      string         `json:"checksum"`
	RecordCounts  map[string]int `json:"record_counts"`
	FormatVersion string         `json:"format_version"`
}

// SnapshotInfo 一个完整快照的描述
type SnapshotInfo struct {
	Path         string         `json:"path"`
	Name         string         `json:"name"`
	Class        Class          `json:"class"`
	CreatedAt    time.Time      `json:"created_at"`
	SizeBytes    int64          `json:"size_bytes"`
	RecordCounts map[string]int `json:"record_counts"`
}

// Store 磁盘上的快照存储
// 目录结构：<base>/<class>/<name>/{dump.json, files/, manifest.json}
type Store struct {
	baseDir string
}

// NewStore 创建快照存储
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir 返回快照根目录
func (s *Store) BaseDir() string {
	return s.baseDir
}

// classDir 返回类别目录，manual 快照存放在 daily 下
func (s *Store) classDir(class Class) string {
	if class == ClassManual {
		return filepath.Join(s.baseDir, string(ClassDaily))
	}
	return filepath.Join(s.baseDir, string(class))
}

// NameFor 返回快照目录名
// daily: YYYY-MM-DD，monthly: YYYY-MM，yearly: YYYY，manual: manual-<ISO8601，冒号换成横线>
func (s *Store) NameFor(class Class, now time.Time) string {
	switch class {
	case ClassMonthly:
		return now.Format("2006-01")
	case ClassYearly:
		return now.Format("2006")
	case ClassManual:
		return "manual-" + now.UTC().Format("2006-01-02T15-04-05Z")
	default:
		return now.Format("2006-01-02")
	}
}

// PathFor 返回快照完整路径
func (s *Store) PathFor(class Class, now time.Time) string {
	return filepath.Join(s.classDir(class), s.NameFor(class, now))
}

// FilesDir 返回快照的文件子树目录
func (s *Store) FilesDir(path string) string {
	return filepath.Join(path, filesDirName)
}

// WriteDump 序列化并写入 dump 文件，返回字节数和 SHA-256 校验和
func (s *Store) WriteDump(path string, dump *Dump) (int64, string, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return 0, "", fmt.Errorf("create snapshot directory: %w", err)
	}

	data, err := json.Marshal(dump)
	if err != nil {
		return 0, "", fmt.Errorf("marshal dump: %w", err)
	}

	if err := os.WriteFile(filepath.Join(path, dumpFileName), data, 0o644); err != nil {
		return 0, "", fmt.Errorf("write dump: %w", err)
	}

	sum := sha256.Sum256(data)
	return int64(len(data)), hex.EncodeToString(sum[:]), nil
}

// WriteManifest 写入 manifest，必须在 dump 和文件全部写完之后调用
func (s *Store) WriteManifest(path string, manifest *Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, manifestFileName), data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest 读取快照 manifest，不存在时返回 os.ErrNotExist
func (s *Store) ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(path, manifestFileName))
	if err != nil {
		return nil, err
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &manifest, nil
}

// ReadDump 读取并反序列化快照 dump
// dump 缺失返回 ErrDumpMissing；校验和不匹配只告警，dump 本身是更权威的数据
func (s *Store) ReadDump(ctx context.Context, path string) (*Dump, error) {
	logger := zerolog.Ctx(ctx)

	data, err := os.ReadFile(filepath.Join(path, dumpFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDumpMissing, path)
		}
		return nil, fmt.Errorf("read dump: %w", err)
	}

	if manifest, mErr := s.ReadManifest(path); mErr == nil && manifest.Checksum != "" {
		sum := sha256.Sum256(data)
		if hex.EncodeToString(sum[:]) != manifest.Checksum {
			logger.Warn().
				Str("path", path).
				Msg("Snapshot checksum mismatch, using dump content anyway")
		}
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("unmarshal dump: %w", err)
	}
	return &dump, nil
}

// List 列出所有完整的快照（有 manifest 的），按创建时间降序
// 没有 manifest 的目录视为未完成，不会出现在结果里
func (s *Store) List() ([]SnapshotInfo, error) {
	var infos []SnapshotInfo

	for _, class := range []Class{ClassDaily, ClassMonthly, ClassYearly} {
		dir := filepath.Join(s.baseDir, string(class))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read class directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			manifest, err := s.ReadManifest(path)
			if err != nil {
				// 未完成或损坏的快照目录，跳过
				continue
			}
			infos = append(infos, SnapshotInfo{
				Path:         path,
				Name:         entry.Name(),
				Class:        manifest.Class,
				CreatedAt:    manifest.CreatedAt,
				SizeBytes:    manifest.SizeBytes,
				RecordCounts: manifest.RecordCounts,
			})
		}
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})
	return infos, nil
}

// Delete 删除一个快照目录，路径必须在存储根目录之内
// 返回是否真的删除了内容
func (s *Store) Delete(path string) (bool, error) {
	absBase, err := filepath.Abs(s.baseDir)
	if err != nil {
		return false, fmt.Errorf("resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolve snapshot path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(os.PathSeparator)) {
		return false, fmt.Errorf("path %s is outside the snapshot store", path)
	}

	if _, err := os.Stat(absPath); errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err := os.RemoveAll(absPath); err != nil {
		return false, fmt.Errorf("remove snapshot: %w", err)
	}
	return true, nil
}
