package businessflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/repository"
	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// unspecifiedCurrency keys spend logged without a currency in summaries
const unspecifiedCurrency = "UNSPECIFIED"

// PerformanceFlow handles logging and reading ad copy performance
type PerformanceFlow interface {
	LogAdPerformance(ctx context.Context, req *dto.LogAdPerformanceRequest) (*dto.PerformanceResult, error)
	ListAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (*dto.ListResponse[dto.PerformanceResponse], error)
	SummarizeAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (*dto.PerformanceSummaryResponse, error)
	ExportAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (string, []byte, error)
}

// PerformanceFlowImpl implements the performance business flow
type PerformanceFlowImpl struct {
	campaignRepo    repository.CampaignRepository
	adCopyRepo      repository.AdCopyRepository
	performanceRepo repository.PerformanceRecordRepository
	logger          *zap.Logger
}

// NewPerformanceFlow creates a new performance flow instance
func NewPerformanceFlow(
	campaignRepo repository.CampaignRepository,
	adCopyRepo repository.AdCopyRepository,
	performanceRepo repository.PerformanceRecordRepository,
	logger *zap.Logger,
) PerformanceFlow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PerformanceFlowImpl{
		campaignRepo:    campaignRepo,
		adCopyRepo:      adCopyRepo,
		performanceRepo: performanceRepo,
		logger:          logger.Named("performance_flow"),
	}
}

// LogAdPerformance appends a performance record to an owned ad copy
func (s *PerformanceFlowImpl) LogAdPerformance(ctx context.Context, req *dto.LogAdPerformanceRequest) (result *dto.PerformanceResult, err error) {
	defer func() { observeOutcome("log_ad_performance", err) }()

	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	now := utils.UTCNow()

	adCopyID, err := parseID(req.AdCopyID)
	if err != nil {
		return nil, err
	}

	record, err := s.buildRecord(req, adCopyID, now)
	if err != nil {
		return nil, err
	}

	if _, err := guardAdCopyChain(ctx, s.adCopyRepo, s.campaignRepo, adCopyID, userID); err != nil {
		return nil, err
	}

	if err := s.performanceRepo.Save(ctx, record); err != nil {
		s.logger.Error("failed to log performance", zap.String("ad_copy_id", adCopyID.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to log performance", err)
	}

	resp, err := toPerformanceResponse(record)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to build performance response", err)
	}
	return &dto.PerformanceResult{Performance: resp}, nil
}

// ListAdPerformance returns every record of an owned ad copy
func (s *PerformanceFlowImpl) ListAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (result *dto.ListResponse[dto.PerformanceResponse], err error) {
	defer func() { observeOutcome("list_ad_performance", err) }()

	records, err := s.ownedRecords(ctx, req)
	if err != nil {
		return nil, err
	}

	items, err := toResponses[dto.PerformanceResponse](records)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to list performance", err)
	}

	return dto.NewListResponse(items), nil
}

// SummarizeAdPerformance totals the records of an owned ad copy
func (s *PerformanceFlowImpl) SummarizeAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (result *dto.PerformanceSummaryResponse, err error) {
	defer func() { observeOutcome("summarize_ad_performance", err) }()

	records, err := s.ownedRecords(ctx, req)
	if err != nil {
		return nil, err
	}

	adCopyID, _ := utils.ParseUUID(req.AdCopyID)
	return summarize(adCopyID, records), nil
}

// ExportAdPerformance renders the records of an owned ad copy as an XLSX workbook
func (s *PerformanceFlowImpl) ExportAdPerformance(ctx context.Context, req *dto.AdPerformanceRequest) (filename string, content []byte, err error) {
	defer func() { observeOutcome("export_ad_performance", err) }()

	records, err := s.ownedRecords(ctx, req)
	if err != nil {
		return "", nil, err
	}

	content, err = performanceWorkbook(records)
	if err != nil {
		s.logger.Error("failed to export performance", zap.String("ad_copy_id", req.AdCopyID), zap.Error(err))
		return "", nil, NewBusinessError(CodeInternal, "Failed to write Excel file", err)
	}

	filename = fmt.Sprintf("ad_copy_%s_performance.xlsx", strings.ToLower(strings.TrimSpace(req.AdCopyID)))
	return filename, content, nil
}

// ownedRecords resolves identity, guards the ad copy chain and loads its records
func (s *PerformanceFlowImpl) ownedRecords(ctx context.Context, req *dto.AdPerformanceRequest) ([]*models.PerformanceRecord, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	adCopyID, err := parseID(req.AdCopyID)
	if err != nil {
		return nil, err
	}

	if _, err := guardAdCopyChain(ctx, s.adCopyRepo, s.campaignRepo, adCopyID, userID); err != nil {
		return nil, err
	}

	records, err := s.performanceRepo.ByAdCopyID(ctx, adCopyID)
	if err != nil {
		s.logger.Error("failed to list performance", zap.String("ad_copy_id", adCopyID.String()), zap.Error(err))
		return nil, NewBusinessError(CodeInternal, "Failed to list performance", err)
	}
	return records, nil
}

func (s *PerformanceFlowImpl) buildRecord(req *dto.LogAdPerformanceRequest, adCopyID uuid.UUID, now time.Time) (*models.PerformanceRecord, error) {
	record := &models.PerformanceRecord{
		ID:          uuid.New(),
		AdCopyID:    adCopyID,
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		Conversions: req.Conversions,
		Spend:       req.Spend,
		Notes:       req.Notes,
		CreatedAt:   now,
	}

	if req.Date != nil {
		date, err := utils.ParseDate(strings.TrimSpace(*req.Date))
		if err != nil {
			return nil, validationError(ErrInvalidPerformanceDate)
		}
		record.Date = utils.ToPtr(datatypes.Date(date))
	}

	for _, metric := range []*int64{req.Impressions, req.Clicks, req.Conversions} {
		if metric != nil && *metric < 0 {
			return nil, validationError(ErrNegativeMetric)
		}
	}

	if req.Spend != nil {
		if req.Spend.IsNegative() {
			return nil, validationError(ErrNegativeSpend)
		}
		if !utils.FitsAmountColumn(*req.Spend) {
			return nil, validationError(ErrInvalidSpend)
		}
	}

	if req.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*req.Currency))
		if !isCurrencyCode(currency) {
			return nil, validationError(ErrInvalidCurrency)
		}
		record.Currency = &currency
	}

	return record, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func summarize(adCopyID uuid.UUID, records []*models.PerformanceRecord) *dto.PerformanceSummaryResponse {
	summary := &dto.PerformanceSummaryResponse{
		AdCopyID:        adCopyID,
		Records:         len(records),
		SpendByCurrency: make(map[string]decimal.Decimal),
	}

	var first, last *time.Time
	for _, r := range records {
		if r.Impressions != nil {
			summary.Impressions += *r.Impressions
		}
		if r.Clicks != nil {
			summary.Clicks += *r.Clicks
		}
		if r.Conversions != nil {
			summary.Conversions += *r.Conversions
		}
		if r.Spend != nil {
			currency := unspecifiedCurrency
			if r.Currency != nil && *r.Currency != "" {
				currency = *r.Currency
			}
			summary.SpendByCurrency[currency] = summary.SpendByCurrency[currency].Add(*r.Spend)
		}
		if d := r.DateValue(); d != nil {
			if first == nil || d.Before(*first) {
				first = d
			}
			if last == nil || d.After(*last) {
				last = d
			}
		}
	}

	if summary.Impressions > 0 {
		summary.ClickThroughRate = float64(summary.Clicks) / float64(summary.Impressions)
	}
	if summary.Clicks > 0 {
		summary.ConversionRate = float64(summary.Conversions) / float64(summary.Clicks)
	}
	if first != nil {
		summary.FirstDate = utils.ToPtr(utils.FormatDate(*first))
		summary.LastDate = utils.ToPtr(utils.FormatDate(*last))
	}

	return summary
}
