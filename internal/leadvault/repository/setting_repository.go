package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository 设置仓库接口
type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context, prefix string) ([]*model.Setting, error)
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建设置仓库
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// Get 根据 key 获取设置，不存在时返回 nil
func (r *settingRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Set 写入设置，已存在时覆盖
func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	setting := &model.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

// List 列出指定前缀的设置
func (r *settingRepository) List(ctx context.Context, prefix string) ([]*model.Setting, error) {
	var settings []*model.Setting
	query := r.db.WithContext(ctx).Model(&model.Setting{})
	if prefix != "" {
		query = query.Where("key LIKE ?", prefix+"%")
	}
	if err := query.Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
