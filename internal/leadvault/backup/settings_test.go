package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Parallel()

	_, repo, _ := setupTestEngine(t)

	settings := LoadSettings(context.Background(), repo.DB(), "")
	assert.True(t, settings.Enabled)
	assert.Equal(t, 30, settings.RetainDaily)
	assert.Equal(t, 12, settings.RetainMonthly)
	assert.Equal(t, 5, settings.RetainYearly)
}

func TestLoadSettingsFromFile(t *testing.T) {
	t.Parallel()

	_, repo, _ := setupTestEngine(t)
	path := filepath.Join(t.TempDir(), "backup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\nretain_daily: 7\n"), 0o644))

	settings := LoadSettings(context.Background(), repo.DB(), path)
	assert.False(t, settings.Enabled)
	assert.Equal(t, 7, settings.RetainDaily)
	// 文件没写的字段保持默认
	assert.Equal(t, 12, settings.RetainMonthly)
}

func TestLoadSettingsDatabaseOverridesFile(t *testing.T) {
	t.Parallel()

	_, repo, _ := setupTestEngine(t)
	path := filepath.Join(t.TempDir(), "backup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: false\nretain_daily: 7\n"), 0o644))

	mustCreate(t, repo,
		&model.Setting{Key: "backup.enabled", Value: "true", UpdatedAt: time.Now()},
		&model.Setting{Key: "backup.retain.daily", Value: "14", UpdatedAt: time.Now()},
		&model.Setting{Key: "backup.retain.yearly", Value: "3", UpdatedAt: time.Now()},
	)

	settings := LoadSettings(context.Background(), repo.DB(), path)
	assert.True(t, settings.Enabled)
	assert.Equal(t, 14, settings.RetainDaily)
	assert.Equal(t, 3, settings.RetainYearly)
	// 数据库和文件都没有的键落到默认
	assert.Equal(t, 12, settings.RetainMonthly)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	t.Parallel()

	_, repo, _ := setupTestEngine(t)
	mustCreate(t, repo,
		&model.Setting{Key: "backup.enabled", Value: "maybe", UpdatedAt: time.Now()},
		&model.Setting{Key: "backup.retain.daily", Value: "a lot", UpdatedAt: time.Now()},
	)

	settings := LoadSettings(context.Background(), repo.DB(), "")
	assert.True(t, settings.Enabled)
	assert.Equal(t, 30, settings.RetainDaily)
}

func TestLoadSettingsIgnoresBrokenFile(t *testing.T) {
	t.Parallel()

	_, repo, _ := setupTestEngine(t)
	path := filepath.Join(t.TempDir(), "backup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enabled: [not yaml"), 0o644))

	settings := LoadSettings(context.Background(), repo.DB(), path)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestRetainFor(t *testing.T) {
	t.Parallel()

	settings := Settings{RetainDaily: 30, RetainMonthly: 12, RetainYearly: 5}
	assert.Equal(t, 30, settings.RetainFor(ClassDaily))
	assert.Equal(t, 12, settings.RetainFor(ClassMonthly))
	assert.Equal(t, 5, settings.RetainFor(ClassYearly))
	// manual 快照与 daily 同一套保留策略
	assert.Equal(t, 30, settings.RetainFor(ClassManual))
}
