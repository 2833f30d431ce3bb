package service

import (
	"context"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/jimyag/leadvault/pkg/apierror"
)

// StatsService 简单聚合统计服务
type StatsService struct {
	leadRepo repository.LeadRepository
}

// NewStatsService 创建统计服务
func NewStatsService(repo *repository.Repository) *StatsService {
	return &StatsService{
		leadRepo: repository.NewLeadRepository(repo.DB()),
	}
}

// TopAgentOfDay 返回指定日期赢单最多的销售
// 没有任何赢单时返回 nil
func (s *StatsService) TopAgentOfDay(ctx context.Context, day time.Time) (*entity.AgentStats, error) {
	since := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	until := since.AddDate(0, 0, 1)

	counts, err := s.leadRepo.CountWonByOwner(ctx, since, until)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to aggregate won leads", err)
	}
	if len(counts) == 0 {
		return nil, nil
	}

	return &entity.AgentStats{
		OwnerID:  counts[0].OwnerID,
		WonLeads: counts[0].Count,
		Day:      since.Format("2006-01-02"),
	}, nil
}
