package handlers

import (
	"time"

	"github.com/amirphl/copydesk/app/dto"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PerformanceHandlerInterface defines the contract for performance handlers
type PerformanceHandlerInterface interface {
	LogAdPerformance(c fiber.Ctx) error
	ListAdPerformance(c fiber.Ctx) error
	SummarizeAdPerformance(c fiber.Ctx) error
	ExportAdPerformance(c fiber.Ctx) error
}

// PerformanceHandler handles performance log requests nested under an ad copy
type PerformanceHandler struct {
	baseHandler
	performanceFlow businessflow.PerformanceFlow
}

// NewPerformanceHandler creates a new performance handler
func NewPerformanceHandler(performanceFlow businessflow.PerformanceFlow, timeout time.Duration, logger *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		baseHandler:     newBaseHandler(timeout, logger, "performance_handler"),
		performanceFlow: performanceFlow,
	}
}

// LogAdPerformance appends a performance record to an ad copy
// @Summary Log Ad Performance
// @Tags Performance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param adCopyId path string true "Ad copy ID"
// @Param request body dto.LogAdPerformanceRequest true "Performance data"
// @Success 201 {object} dto.APIResponse{data=dto.PerformanceResult} "Performance logged successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Ad copy not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/v1/ad-copies/{adCopyId}/performance [post]
func (h *PerformanceHandler) LogAdPerformance(c fiber.Ctx) error {
	var req dto.LogAdPerformanceRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	req.AdCopyID = c.Params("adCopyId")
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/ad-copies/"+req.AdCopyID+"/performance")
	defer cancel()

	result, err := h.performanceFlow.LogAdPerformance(ctx, &req)
	if err != nil {
		return h.flowError(c, "log ad performance", err)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Performance logged successfully", result)
}

// ListAdPerformance returns every performance record of an ad copy
// @Summary List Ad Performance
// @Tags Performance
// @Produce json
// @Security BearerAuth
// @Param adCopyId path string true "Ad copy ID"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse[dto.PerformanceResponse]} "Performance retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Ad copy not found"
// @Router /api/v1/ad-copies/{adCopyId}/performance [get]
func (h *PerformanceHandler) ListAdPerformance(c fiber.Ctx) error {
	req := dto.AdPerformanceRequest{AdCopyID: c.Params("adCopyId")}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/ad-copies/"+req.AdCopyID+"/performance")
	defer cancel()

	result, err := h.performanceFlow.ListAdPerformance(ctx, &req)
	if err != nil {
		return h.flowError(c, "list ad performance", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Performance retrieved successfully", result)
}

// SummarizeAdPerformance returns totals and rates over the records of an ad copy
// @Summary Summarize Ad Performance
// @Tags Performance
// @Produce json
// @Security BearerAuth
// @Param adCopyId path string true "Ad copy ID"
// @Success 200 {object} dto.APIResponse{data=dto.PerformanceSummaryResponse} "Performance summary retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Ad copy not found"
// @Router /api/v1/ad-copies/{adCopyId}/performance/summary [get]
func (h *PerformanceHandler) SummarizeAdPerformance(c fiber.Ctx) error {
	req := dto.AdPerformanceRequest{AdCopyID: c.Params("adCopyId")}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/ad-copies/"+req.AdCopyID+"/performance/summary")
	defer cancel()

	result, err := h.performanceFlow.SummarizeAdPerformance(ctx, &req)
	if err != nil {
		return h.flowError(c, "summarize ad performance", err)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Performance summary retrieved successfully", result)
}

// ExportAdPerformance downloads the records of an ad copy as an Excel workbook
// @Summary Export Ad Performance
// @Tags Performance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param adCopyId path string true "Ad copy ID"
// @Success 200 {file} file "XLSX workbook"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 404 {object} dto.APIResponse "Ad copy not found"
// @Router /api/v1/ad-copies/{adCopyId}/performance/export [get]
func (h *PerformanceHandler) ExportAdPerformance(c fiber.Ctx) error {
	req := dto.AdPerformanceRequest{AdCopyID: c.Params("adCopyId")}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/ad-copies/"+req.AdCopyID+"/performance/export")
	defer cancel()

	filename, data, err := h.performanceFlow.ExportAdPerformance(ctx, &req)
	if err != nil {
		return h.flowError(c, "export ad performance", err)
	}

	c.Set("Content-Type", xlsxContentType)
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}
