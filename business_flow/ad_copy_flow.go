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

// AdCopyFlow handles the ad copy business logic
type AdCopyFlow interface {
	CreateAdCopy(ctx context.Context, req *dto.CreateAdCopyRequest) (*dto.AdCopyResult, error)
	UpdateAdCopy(ctx context.Context, req *dto.UpdateAdCopyRequest) (*dto.AdCopyResult, error)
	DeleteAdCopy(ctx context.Context, req *dto.DeleteAdCopyRequest) (*dto.DeleteAdCopyResponse, error)
	ListAdCopies(ctx context.Context, req *dto.ListAdCopiesRequest) (*dto.ListResponse[dto.AdCopyResponse], error)
}

// AdCopyFlowImpl implements the ad copy business flow
type AdCopyFlowImpl struct {
	campaignRepo repository.CampaignRepository
	adCopyRepo   repository.AdCopyRepository
	logger       *zap.Logger
}

// NewAdCopyFlow creates a new ad copy flow instance
func NewAdCopyFlow(
	campaignRepo repository.CampaignRepository,
	adCopyRepo repository.AdCopyRepository,
	logger *zap.Logger,
) AdCopyFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdCopyFlowImpl{
		campaignRepo: campaignRepo,
		adCopyRepo:   adCopyRepo,
		logger:       logger.Named("ad_copy_flow"),
	}
}

// CreateAdCopy inserts an ad copy into an owned campaign
func (s *AdCopyFlowImpl) CreateAdCopy(ctx context.Context, req *dto.CreateAdCopyRequest) (result *dto.AdCopyResult, err error) {
	defer func() { observeOutcome("create_ad_copy", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	now := utils.UTCNow()

	campaignID, err := parseID(req.CampaignID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.PrimaryText) == "" {
		return nil, validationError(ErrPrimaryTextRequired)
	}

	campaign, err := guardCampaign(ctx, s.campaignRepo, campaignID, userID)
	if err != nil {
		return nil, err
	}

	adCopy := &models.AdCopy{
		ID:           uuid.New(),
		CampaignID:   campaign.ID,
		UserID:       campaign.UserID,
		Platform:     req.Platform,
		Headline:     req.Headline,
		PrimaryText:  req.PrimaryText,
		Description:  req.Description,
		CallToAction: req.CallToAction,
		Tone:         req.Tone,
		VariantLabel: req.VariantLabel,
		URL:          req.URL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.adCopyRepo.Save(ctx, adCopy); err != nil {
		s.logger.Error("failed to create ad copy",
			zap.String("campaign_id", campaignID.String()),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, NewBusinessError(CodeInternal, "Failed to create ad copy", err)
	}

	return s.adCopyResult(adCopy)
}

// UpdateAdCopy applies the supplied fields to an ad copy of an owned campaign
func (s *AdCopyFlowImpl) UpdateAdCopy(ctx context.Context, req *dto.UpdateAdCopyRequest) (result *dto.AdCopyResult, err error) {
	defer func() { observeOutcome("update_ad_copy", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	now := utils.UTCNow()

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	campaignID, err := parseID(req.CampaignID)
	if err != nil {
		return nil, err
	}

	set, err := sparseUpdate(map[string]presence{
		"platform":       req.Platform,
		"headline":       req.Headline,
		"primary_text":   req.PrimaryText,
		"description":    req.Description,
		"call_to_action": req.CallToAction,
		"tone":           req.Tone,
		"variant_label":  req.VariantLabel,
		"url":            req.URL,
	}, now)
	if err != nil {
		return nil, err
	}
	if err := requireNonBlank(req.PrimaryText, ErrPrimaryTextRequired); err != nil {
		return nil, err
	}

	if _, err := guardCampaign(ctx, s.campaignRepo, campaignID, userID); err != nil {
		return nil, err
	}

	filter := models.AdCopyFilter{ID: &id, CampaignID: &campaignID, UserID: &userID}
	adCopy, err := s.adCopyRepo.UpdateReturning(ctx, filter, set)
	if err != nil {
		s.logger.Error("failed to update ad copy", zap.String("ad_copy_id", id.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to update ad copy", err)
	}
	if adCopy == nil {
		return nil, adCopyResource.notFoundError()
	}

	return s.adCopyResult(adCopy)
}

// DeleteAdCopy removes an ad copy of an owned campaign
func (s *AdCopyFlowImpl) DeleteAdCopy(ctx context.Context, req *dto.DeleteAdCopyRequest) (result *dto.DeleteAdCopyResponse, err error) {
	defer func() { observeOutcome("delete_ad_copy", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}
	campaignID, err := parseID(req.CampaignID)
	if err != nil {
		return nil, err
	}

	if _, err := guardCampaign(ctx, s.campaignRepo, campaignID, userID); err != nil {
		return nil, err
	}

	deleted, err := s.adCopyRepo.DeleteWhere(ctx, models.AdCopyFilter{ID: &id, CampaignID: &campaignID, UserID: &userID})
	if err != nil {
		s.logger.Error("failed to delete ad copy", zap.String("ad_copy_id", id.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to delete ad copy", err)
	}
	if deleted == 0 {
		return nil, adCopyResource.notFoundError()
	}

	return &dto.DeleteAdCopyResponse{Success: true}, nil
}

// ListAdCopies returns the ad copies of an owned campaign
func (s *AdCopyFlowImpl) ListAdCopies(ctx context.Context, req *dto.ListAdCopiesRequest) (result *dto.ListResponse[dto.AdCopyResponse], err error) {
	defer func() { observeOutcome("list_ad_copies", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	campaignID, err := parseID(req.CampaignID)
	if err != nil {
		return nil, err
	}

	if _, err := guardCampaign(ctx, s.campaignRepo, campaignID, userID); err != nil {
		return nil, err
	}

	adCopies, err := s.adCopyRepo.ByCampaign(ctx, campaignID, userID)
	if err != nil {
		s.logger.Error("failed to list ad copies", zap.String("campaign_id", campaignID.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to list ad copies", err)
	}

	items, err := toResponses[dto.AdCopyResponse](adCopies)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to list ad copies", err)
	}

	return dto.NewListResponse(items), nil
}

func (s *AdCopyFlowImpl) adCopyResult(adCopy *models.AdCopy) (*dto.AdCopyResult, error) {
	resp, err := toAdCopyResponse(adCopy)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to build ad copy response", err)
	}
	return &dto.AdCopyResult{AdCopy: resp}, nil
}
