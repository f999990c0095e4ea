package handlers

import (
	"time"

	"github.com/amirphl/copydesk/app/dto"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AdCopyHandlerInterface defines the contract for ad copy handlers
type AdCopyHandlerInterface interface {
	CreateAdCopy(c fiber.Ctx) error
	UpdateAdCopy(c fiber.Ctx) error
	DeleteAdCopy(c fiber.Ctx) error
	ListAdCopies(c fiber.Ctx) error
}

// AdCopyHandler handles ad copy requests nested under a campaign
type AdCopyHandler struct {
	baseHandler
	adCopyFlow businessflow.AdCopyFlow
}

// NewAdCopyHandler creates a new ad copy handler
func NewAdCopyHandler(adCopyFlow businessflow.AdCopyFlow, timeout time.Duration, logger *zap.Logger) *AdCopyHandler {
	return &AdCopyHandler{
		baseHandler: newBaseHandler(timeout, logger, "ad_copy_handler"),
		adCopyFlow:  adCopyFlow,
	}
}

// CreateAdCopy adds an ad copy to an owned campaign
// @Summary Create Ad Copy
// @Tags Ad Copies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Param request body dto.CreateAdCopyRequest true "Ad copy data"
// @Success 201 {object} dto.APIResponse{data=dto.AdCopyResult} "Ad copy created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns/{campaignId}/ad-copies [post]
func (h *AdCopyHandler) CreateAdCopy(c fiber.Ctx) error {
	var req dto.CreateAdCopyRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	req.CampaignID = c.Params("campaignId")
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.CampaignID+"/ad-copies")
	defer cancel()

	result, err := h.adCopyFlow.CreateAdCopy(ctx, &req)
	if err != nil {
		return h.flowError(c, "create ad copy", err)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Ad copy created successfully", result)
}

// UpdateAdCopy applies a partial update to an ad copy
// @Summary Update Ad Copy
// @Description Update the supplied fields of an ad copy. At least one field is required; null clears an optional field.
// @Tags Ad Copies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Param id path string true "Ad copy ID"
// @Param request body dto.UpdateAdCopyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.AdCopyResult} "Ad copy updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or no fields supplied"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign or ad copy not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns/{campaignId}/ad-copies/{id} [patch]
func (h *AdCopyHandler) UpdateAdCopy(c fiber.Ctx) error {
	var req dto.UpdateAdCopyRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	req.CampaignID = c.Params("campaignId")
	req.ID = c.Params("id")
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.CampaignID+"/ad-copies/"+req.ID)
	defer cancel()

	result, err := h.adCopyFlow.UpdateAdCopy(ctx, &req)
	if err != nil {
		return h.flowError(c, "update ad copy", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ad copy updated successfully", result)
}

// DeleteAdCopy removes an ad copy
// @Summary Delete Ad Copy
// @Tags Ad Copies
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Param id path string true "Ad copy ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteAdCopyResponse} "Ad copy deleted successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign or ad copy not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/campaigns/{campaignId}/ad-copies/{id} [delete]
func (h *AdCopyHandler) DeleteAdCopy(c fiber.Ctx) error {
	req := dto.DeleteAdCopyRequest{
		ID:         c.Params("id"),
		CampaignID: c.Params("campaignId"),
	}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.CampaignID+"/ad-copies/"+req.ID)
	defer cancel()

	result, err := h.adCopyFlow.DeleteAdCopy(ctx, &req)
	if err != nil {
		return h.flowError(c, "delete ad copy", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ad copy deleted successfully", result)
}

// ListAdCopies returns the ad copies of an owned campaign
// @Summary List Ad Copies
// @Tags Ad Copies
// @Produce json
// @Security BearerAuth
// @Param campaignId path string true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[dto.AdCopyResponse]} "Ad copies retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Campaign not found"
// @Router /api/v1/campaigns/{campaignId}/ad-copies [get]
func (h *AdCopyHandler) ListAdCopies(c fiber.Ctx) error {
	req := dto.ListAdCopiesRequest{CampaignID: c.Params("campaignId")}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/campaigns/"+req.CampaignID+"/ad-copies")
	defer cancel()

	result, err := h.adCopyFlow.ListAdCopies(ctx, &req)
	if err != nil {
		return h.flowError(c, "list ad copies", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Ad copies retrieved successfully", result)
}
