package backup

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// settings 表中的备份配置键
const (
	settingEnabled       = "backup.enabled"
	settingRetainDaily   = "backup.retain.daily"
	settingRetainMonthly = "backup.retain.monthly"
	settingRetainYearly  = "backup.retain.yearly"
)

// Settings 备份设置
type Settings struct {
	Enabled       bool `yaml:"enabled"`
	RetainDaily   int  `yaml:"retain_daily"`
	RetainMonthly int  `yaml:"retain_monthly"`
	RetainYearly  int  `yaml:"retain_yearly"`
}

// DefaultSettings 返回硬编码的默认设置
// 设置存储不可用时使用：开启备份，保留 30 天 / 12 月 / 5 年
func DefaultSettings() Settings {
	return Settings{
		Enabled:       true,
		RetainDaily:   30,
		RetainMonthly: 12,
		RetainYearly:  5,
	}
}

// LoadSettings 加载备份设置
// 优先级：数据库 settings 表 > YAML 文件 > 硬编码默认值
// 任何一层不可用时降级到下一层，不会失败
func LoadSettings(ctx context.Context, db *gorm.DB, filePath string) Settings {
	logger := zerolog.Ctx(ctx)
	settings := DefaultSettings()

	// YAML 文件作为初始值（可选）
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// 文件不存在则忽略
		case err != nil:
			logger.Warn().Err(err).Str("path", filePath).Msg("Failed to read backup settings file, ignoring")
		default:
			if err := yaml.Unmarshal(data, &settings); err != nil {
				logger.Warn().Err(err).Str("path", filePath).Msg("Invalid backup settings file, ignoring")
				settings = DefaultSettings()
			}
		}
	}

	// 数据库设置覆盖文件和默认值
	var rows []model.Setting
	if err := db.WithContext(ctx).Where("key LIKE ?", "backup.%").Find(&rows).Error; err != nil {
		logger.Warn().Err(err).Msg("Failed to read backup settings from database, using fallback")
		return settings
	}
	for _, row := range rows {
		switch row.Key {
		case settingEnabled:
			if v, err := strconv.ParseBool(row.Value); err == nil {
				settings.Enabled = v
			}
		case settingRetainDaily:
			if v, err := strconv.Atoi(row.Value); err == nil {
				settings.RetainDaily = v
			}
		case settingRetainMonthly:
			if v, err := strconv.Atoi(row.Value); err == nil {
				settings.RetainMonthly = v
			}
		case settingRetainYearly:
			if v, err := strconv.Atoi(row.Value); err == nil {
				settings.RetainYearly = v
			}
		}
	}
	return settings
}

// RetainFor 返回指定类别的保留个数，manual 快照与 daily 共用
func (s Settings) RetainFor(class Class) int {
	switch class {
	case ClassMonthly:
		return s.RetainMonthly
	case ClassYearly:
		return s.RetainYearly
	default:
		return s.RetainDaily
	}
}
