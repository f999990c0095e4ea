package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LogAdPerformanceRequest represents one performance measurement for an ad copy
type LogAdPerformanceRequest struct {
	AdCopyID    string           `json:"-" validate:"required,uuid"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Impressions *int64           `json:"impressions,omitempty" validate:"omitempty,gte=0"`
	Clicks      *int64           `json:"clicks,omitempty" validate:"omitempty,gte=0"`
	Conversions *int64           `json:"conversions,omitempty" validate:"omitempty,gte=0"`
	Spend       *decimal.Decimal `json:"spend,omitempty" validate:"omitempty,gte=0"`
	Currency    *string          `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Notes       *string          `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// AdPerformanceRequest selects the ad copy whose performance is read
type AdPerformanceRequest struct {
	AdCopyID string `json:"-" validate:"required,uuid"`
}

// PerformanceResponse is the public shape of a performance record
type PerformanceResponse struct {
	ID          uuid.UUID        `json:"id"`
	AdCopyID    uuid.UUID        `json:"adCopyId"`
	Date        *string          `json:"date,omitempty"`
	Impressions *int64           `json:"impressions,omitempty"`
	Clicks      *int64           `json:"clicks,omitempty"`
	Conversions *int64           `json:"conversions,omitempty"`
	Spend       *decimal.Decimal `json:"spend,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// PerformanceResult is returned by logAdPerformance
type PerformanceResult struct {
	Performance PerformanceResponse `json:"performance"`
}

// PerformanceSummaryResponse aggregates every record of an ad copy.
// Rates are zero when their denominator is zero.
type PerformanceSummaryResponse struct {
	AdCopyID         uuid.UUID                  `json:"adCopyId"`
	Records          int                        `json:"records"`
	Impressions      int64                      `json:"impressions"`
	Clicks           int64                      `json:"clicks"`
	Conversions      int64                      `json:"conversions"`
	SpendByCurrency  map[string]decimal.Decimal `json:"spendByCurrency"`
	ClickThroughRate float64                    `json:"clickThroughRate"`
	ConversionRate   float64                    `json:"conversionRate"`
	FirstDate        *string                    `json:"firstDate,omitempty"`
	LastDate         *string                    `json:"lastDate,omitempty"`
}
