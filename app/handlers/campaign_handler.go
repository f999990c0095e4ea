package handlers

import (
	"time"

	"github.com/amirphl/copydesk/app/dto"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// CampaignHandlerInterface defines the contract for campaign handlers
type CampaignHandlerInterface interface {
	CreateCampaign(c fiber.Ctx) error
	UpdateCampaign(c fiber.Ctx) error
	GetCampaign(c fiber.Ctx) error
	ListCampaigns(c fiber.Ctx) error
}

// CampaignHandler handles campaign-related HTTP requests
type CampaignHandler struct {
	baseHandler
	campaignFlow businessflow.CampaignFlow
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignFlow businessflow.CampaignFlow, timeout time.Duration, logger *zap.Logger) *CampaignHandler {
	return &CampaignHandler{
		baseHandler:  newBaseHandler(timeout, logger, "campaign_handler"),
		campaignFlow: campaignFlow,
	}
}

// CreateCampaign handles the campaign creation process
// @Summary Create Campaign
// @Description Create a new campaign owned by the authenticated user
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign creation data"
// @Success 201 {object} dto.APIResponse{data=dto.CampaignResult} "Campaign created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns")
	defer cancel()

	result, err := h.campaignFlow.CreateCampaign(ctx, &req)
	if err != nil {
		return h.flowError(c, "create campaign", err)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Campaign created successfully", result)
}

// UpdateCampaign handles a partial campaign update
// @Summary Update Campaign
// @Description Update the supplied fields of an owned campaign. At least one field is required; null clears an optional field.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResult} "Campaign updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or no fields supplied"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns/{id} [patch]
func (h *CampaignHandler) UpdateCampaign(c fiber.Ctx) error {
	var req dto.UpdateCampaignRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	req.ID = c.Params("id")
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.ID)
	defer cancel()

	result, err := h.campaignFlow.UpdateCampaign(ctx, &req)
	if err != nil {
		return h.flowError(c, "update campaign", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign updated successfully", result)
}

// GetCampaign returns one owned campaign
// @Summary Get Campaign
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResult} "Campaign retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /api/v1/campaigns/{id} [get]
func (h *CampaignHandler) GetCampaign(c fiber.Ctx) error {
	req := dto.GetCampaignRequest{ID: c.Params("id")}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.ID)
	defer cancel()

	result, err := h.campaignFlow.GetCampaign(ctx, &req)
	if err != nil {
		return h.flowError(c, "get campaign", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaign retrieved successfully", result)
}

// ListCampaigns returns every campaign of the authenticated user
// @Summary List Campaigns
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[dto.CampaignResponse]} "Campaigns retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c fiber.Ctx) error {
	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns")
	defer cancel()

	result, err := h.campaignFlow.ListCampaigns(ctx)
	if err != nil {
		return h.flowError(c, "list campaigns", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Campaigns retrieved successfully", result)
}
