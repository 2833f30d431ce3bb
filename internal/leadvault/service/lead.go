package service

import (
	"context"
	"errors"
	"time"

	"github.com/jimyag/leadvault/internal/leadvault/entity"
	"github.com/jimyag/leadvault/internal/leadvault/repository"
	"github.com/jimyag/leadvault/internal/leadvault/repository/model"
	"github.com/jimyag/leadvault/pkg/apierror"
	"github.com/jimyag/leadvault/pkg/idgen"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// LeadService 线索服务
type LeadService struct {
	leadRepo repository.LeadRepository
	idGen    *idgen.Generator
}

// NewLeadService 创建线索服务
func NewLeadService(repo *repository.Repository) *LeadService {
	return &LeadService{
		leadRepo: repository.NewLeadRepository(repo.DB()),
		idGen:    idgen.New(),
	}
}

// CreateLead 创建线索
func (s *LeadService) CreateLead(ctx context.Context, req *entity.CreateLeadRequest) (*entity.Lead, error) {
	logger := zerolog.Ctx(ctx)

	leadID, err := s.idGen.GenerateLeadID()
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to generate lead ID", err)
	}

	lead := &model.Lead{
		ID:         leadID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     "New",
		StageID:    req.StageID,
		CampaignID: req.CampaignID,
		UpdatedAt:  time.Now(),
	}
	if req.OwnerID != "" {
		lead.OwnerID = &req.OwnerID
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to save lead", err)
	}
	logger.Info().Str("leadID", leadID).Msg("Lead created")

	return leadModelToEntity(lead)
}

// GetLead 获取线索
func (s *LeadService) GetLead(ctx context.Context, leadID string) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrLeadNotFound
		}
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to get lead", err)
	}
	return leadModelToEntity(lead)
}

// ListLeads 列举线索
func (s *LeadService) ListLeads(ctx context.Context, req *entity.ListLeadsRequest) ([]entity.Lead, error) {
	filters := make(map[string]interface{})
	if req.Status != "" {
		filters["status"] = req.Status
	}
	if req.CampaignID != "" {
		filters["campaign_id"] = req.CampaignID
	}
	if req.OwnerID != "" {
		filters["owner_id"] = req.OwnerID
	}

	leads, err := s.leadRepo.List(ctx, filters)
	if err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to list leads", err)
	}
	return leadModelsToEntities(leads)
}

// UpdateLeadStatus 更新线索状态
func (s *LeadService) UpdateLeadStatus(ctx context.Context, leadID, status string) (*entity.Lead, error) {
	logger := zerolog.Ctx(ctx)

	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrLeadNotFound
		}
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to get lead", err)
	}

	lead.Status = status
	lead.UpdatedAt = time.Now()
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, apierror.WrapError(apierror.ErrInternalError, "Failed to update lead", err)
	}
	logger.Info().Str("leadID", leadID).Str("status", status).Msg("Lead status updated")

	return leadModelToEntity(lead)
}
