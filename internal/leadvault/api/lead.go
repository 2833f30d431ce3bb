package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/service"
	"github.com/jimyag/leadvault/pkg/ginx"
	"github.com/rs/zerolog"
)

// LeadServiceInterface 定义线索服务接口
type LeadServiceInterface interface {
	CreateLead(ctx context.Context, req *entity.CreateLeadRequest) (*entity.Lead, error)
	GetLead(ctx context.Context, leadID string) (*entity.Lead, error)
	ListLeads(ctx context.Context, req *entity.ListLeadsRequest) ([]entity.Lead, error)
	UpdateLeadStatus(ctx context.Context, leadID, status string) (*entity.Lead, error)
}

// StatsServiceInterface 定义统计服务接口
type StatsServiceInterface interface {
	TopAgentOfDay(ctx context.Context, day time.Time) (*entity.AgentStats, error)
}

type Lead struct {
	leadService  LeadServiceInterface
	statsService StatsServiceInterface
}

func NewLead(leadService *service.LeadService, statsService *service.StatsService) *Lead {
	return &Lead{
		leadService:  leadService,
		statsService: statsService,
	}
}

func (l *Lead) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create-lead", ginx.Adapt5(l.CreateLead))
	router.POST("/get-lead", ginx.Adapt5(l.GetLead))
	router.POST("/list-leads", ginx.Adapt5(l.ListLeads))
	router.POST("/update-lead-status", ginx.Adapt5(l.UpdateLeadStatus))
	router.POST("/top-agent", ginx.Adapt3(l.TopAgent))
}

func (l *Lead) CreateLead(ctx *gin.Context, req *entity.CreateLeadRequest) (*entity.CreateLeadResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("name", req.Name).Msg("API: CreateLead called")

	lead, err := l.leadService.CreateLead(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create lead")
		return nil, err
	}
	return &entity.CreateLeadResponse{Lead: lead}, nil
}

func (l *Lead) GetLead(ctx *gin.Context, req *entity.GetLeadRequest) (*entity.GetLeadResponse, error) {
	lead, err := l.leadService.GetLead(ctx, req.LeadID)
	if err != nil {
		return nil, err
	}
	return &entity.GetLeadResponse{Lead: lead}, nil
}

func (l *Lead) ListLeads(ctx *gin.Context, req *entity.ListLeadsRequest) (*entity.ListLeadsResponse, error) {
	leads, err := l.leadService.ListLeads(ctx, req)
	if err != nil {
		return nil, err
	}
	return &entity.ListLeadsResponse{Leads: leads}, nil
}

func (l *Lead) UpdateLeadStatus(ctx *gin.Context, req *entity.UpdateLeadStatusRequest) (*entity.GetLeadResponse, error) {
	lead, err := l.leadService.UpdateLeadStatus(ctx, req.LeadID, req.Status)
	if err != nil {
		return nil, err
	}
	return &entity.GetLeadResponse{Lead: lead}, nil
}

func (l *Lead) TopAgent(ctx *gin.Context) (*entity.AgentStats, error) {
	return l.statsService.TopAgentOfDay(ctx, time.Now())
}
