package backup

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"github.com/stretchr/testify/require"
)

// setupTestEngine 为每个测试用例创建独立的数据库、快照存储和上传目录
func setupTestEngine(t *testing.T) (*Engine, *repository.Repository, string) {
	t.Helper()
	tmpDir := t.TempDir()

	repo, err := repository.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})

	store := NewStore(filepath.Join(tmpDir, "backups"))
	uploadDir := filepath.Join(tmpDir, "uploads")
	engine := NewEngine(repo.DB(), store, uploadDir)
	return engine, repo, uploadDir
}

// setupTargetEngine 创建共享同一个快照存储的第二个引擎（独立数据库，模拟恢复目标）
func setupTargetEngine(t *testing.T, store *Store) (*Engine, *repository.Repository, string) {
	t.Helper()
	tmpDir := t.TempDir()

	repo, err := repository.New(filepath.Join(tmpDir, "live.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})

	uploadDir := filepath.Join(tmpDir, "uploads")
	engine := NewEngine(repo.DB(), store, uploadDir)
	return engine, repo, uploadDir
}

func strPtr(s string) *string {
	return &s
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func mustCreate(t *testing.T, repo *repository.Repository, records ...interface{}) {
	t.Helper()
	for _, rec := range records {
		require.NoError(t, repo.DB().Create(rec).Error)
	}
}

func testUser(id, name string, managerID *string, updatedAt time.Time) *model.User {
	return &model.User{
		ID:        id,
		Name:      name,
		Email:     id + "@example.com",
		Role:      "agent",
		ManagerID: managerID,
		UpdatedAt: updatedAt,
	}
}

func testLead(id, name, status string, ownerID *string, updatedAt time.Time) *model.Lead {
	return &model.Lead{
		ID:        id,
		Name:      name,
		Status:    status,
		OwnerID:   ownerID,
		UpdatedAt: updatedAt,
	}
}

func tableReport(t *testing.T, result *RestoreResult, table string) TableReport {
	t.Helper()
	for _, report := range result.Tables {
		if report.Table == table {
			return report
		}
	}
	t.Fatalf("no report for table %s", table)
	return TableReport{}
}
