package businessflow

import (
	"context"
	"strings"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/repository"
	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignFlow handles the campaign business logic
type CampaignFlow interface {
	CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (*dto.CampaignResult, error)
	UpdateCampaign(ctx context.Context, req *dto.UpdateCampaignRequest) (*dto.CampaignResult, error)
	GetCampaign(ctx context.Context, req *dto.GetCampaignRequest) (*dto.CampaignResult, error)
	ListCampaigns(ctx context.Context) (*dto.ListResponse[dto.CampaignResponse], error)
}

// CampaignFlowImpl implements the campaign business flow
type CampaignFlowImpl struct {
	campaignRepo repository.CampaignRepository
	logger       *zap.Logger
}

// NewCampaignFlow creates a new campaign flow instance
func NewCampaignFlow(campaignRepo repository.CampaignRepository, logger *zap.Logger) CampaignFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignFlowImpl{
		campaignRepo: campaignRepo,
		logger:       logger.Named("campaign_flow"),
	}
}

// CreateCampaign inserts a campaign owned by the acting user
func (s *CampaignFlowImpl) CreateCampaign(ctx context.Context, req *dto.CreateCampaignRequest) (result *dto.CampaignResult, err error) {
	defer func() { observeOutcome("create_campaign", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	now := utils.UTCNow()

	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError(ErrCampaignNameRequired)
	}

	campaign := &models.Campaign{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		Objective:      req.Objective,
		ProductName:    req.ProductName,
		TargetAudience: req.TargetAudience,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.campaignRepo.Save(ctx, campaign); err != nil {
		s.logger.Error("failed to create campaign", zap.String("user_id", userID), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to create campaign", err)
	}

	return s.campaignResult(campaign)
}

// UpdateCampaign applies the supplied fields to an owned campaign
func (s *CampaignFlowImpl) UpdateCampaign(ctx context.Context, req *dto.UpdateCampaignRequest) (result *dto.CampaignResult, err error) {
	defer func() { observeOutcome("update_campaign", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	now := utils.UTCNow()

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	set, err := sparseUpdate(map[string]presence{
		"name":            req.Name,
		"objective":       req.Objective,
		"product_name":    req.ProductName,
		"target_audience": req.TargetAudience,
		"notes":           req.Notes,
	}, now)
	if err != nil {
		return nil, err
	}
	if err := requireNonBlank(req.Name, ErrCampaignNameRequired); err != nil {
		return nil, err
	}

	if _, err := guardCampaign(ctx, s.campaignRepo, id, userID); err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.UpdateReturning(ctx, models.CampaignFilter{ID: &id, UserID: &userID}, set)
	if err != nil {
		s.logger.Error("failed to update campaign", zap.String("campaign_id", id.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to update campaign", err)
	}
	if campaign == nil {
		return nil, campaignResource.notFoundError()
	}

	return s.campaignResult(campaign)
}

// GetCampaign returns one owned campaign
func (s *CampaignFlowImpl) GetCampaign(ctx context.Context, req *dto.GetCampaignRequest) (result *dto.CampaignResult, err error) {
	defer func() { observeOutcome("get_campaign", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	campaign, err := guardCampaign(ctx, s.campaignRepo, id, userID)
	if err != nil {
		return nil, err
	}

	return s.campaignResult(campaign)
}

// ListCampaigns returns every campaign of the acting user
func (s *CampaignFlowImpl) ListCampaigns(ctx context.Context) (result *dto.ListResponse[dto.CampaignResponse], err error) {
	defer func() { observeOutcome("list_campaigns", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.ByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list campaigns", zap.String("user_id", userID), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to list campaigns", err)
	}

	items, err := toResponses[dto.CampaignResponse](campaigns)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to list campaigns", err)
	}

	return dto.NewListResponse(items), nil
}

func (s *CampaignFlowImpl) campaignResult(campaign *models.Campaign) (*dto.CampaignResult, error) {
	resp, err := toCampaignResponse(campaign)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to build campaign response", err)
	}
	return &dto.CampaignResult{Campaign: resp}, nil
}
