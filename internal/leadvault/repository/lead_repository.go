package repository

import (
	"context"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"gorm.io/gorm"
)

// LeadRepository 线索仓库接口
type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	GetByID(ctx context.Context, id string) (*model.Lead, error)
	List(ctx context.Context, filters map[string]interface{}) ([]*model.Lead, error)
	Update(ctx context.Context, lead *model.Lead) error
	CountWonByOwner(ctx context.Context, since, until time.Time) ([]*OwnerLeadCount, error)
}

// OwnerLeadCount 按负责人聚合的线索数
type OwnerLeadCount struct {
	OwnerID string `gorm:"column:owner_id"`
	Count   int64  `gorm:"column:count"`
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository 创建线索仓库
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create 创建线索
func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// GetByID 根据 ID 获取线索
func (r *leadRepository) GetByID(ctx context.Context, id string) (*model.Lead, error) {
	var lead model.Lead
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// List 列出线索
func (r *leadRepository) List(ctx context.Context, filters map[string]interface{}) ([]*model.Lead, error) {
	var leads []*model.Lead
	query := r.db.WithContext(ctx).Model(&model.Lead{})

	// 应用过滤器
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if campaignID, ok := filters["campaign_id"]; ok {
		query = query.Where("campaign_id = ?", campaignID)
	}
	if ownerID, ok := filters["owner_id"]; ok {
		query = query.Where("owner_id = ?", ownerID)
	}

	if err := query.Order("id").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// Update 更新线索
func (r *leadRepository) Update(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// CountWonByOwner 统计时间段内各负责人赢单的线索数，按数量降序
func (r *leadRepository) CountWonByOwner(ctx context.Context, since, until time.Time) ([]*OwnerLeadCount, error) {
	var counts []*OwnerLeadCount
	err := r.db.WithContext(ctx).Model(&model.Lead{}).
		Select("owner_id, COUNT(*) AS count").
		Where("status = ? AND owner_id IS NOT NULL", "Won").
		Where("updated_at >= ? AND updated_at < ?", since, until).
		Group("owner_id").
		Order("count DESC").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
