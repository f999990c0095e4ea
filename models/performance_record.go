package models

import (
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PerformanceRecord is an append-only measurement logged against an ad copy
type PerformanceRecord struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	AdCopyID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_performance_records_ad_copy_id" json:"adCopyId"`
	Date        *datatypes.Date  `gorm:"type:date" json:"date,omitempty"`
	Impressions *int64           `json:"impressions,omitempty"`
	Clicks      *int64           `json:"clicks,omitempty"`
	Conversions *int64           `json:"conversions,omitempty"`
	Spend       *decimal.Decimal `gorm:"type:numeric(14,2)" json:"spend,omitempty"`
	Currency    *string          `gorm:"type:varchar(3)" json:"currency,omitempty"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time        `gorm:"not null" json:"createdAt"`
}

// TableName returns the table name for the model
func (PerformanceRecord) TableName() string {
	return "performance_records"
}

// BeforeCreate is called before creating a new record
func (p *PerformanceRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = utils.UTCNow()
	}
	return nil
}

// DateValue returns the record date as a time, or nil when unset
func (p *PerformanceRecord) DateValue() *time.Time {
	if p.Date == nil {
		return nil
	}
	t := time.Time(*p.Date)
	return &t
}

// PerformanceRecordFilter represents filter criteria for performance records
type PerformanceRecordFilter struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	AdCopyID *uuid.UUID `json:"ad_copy_id,omitempty"`
}

// Conditions returns the column equality predicates of the filter
func (f PerformanceRecordFilter) Conditions() map[string]any {
	conds := make(map[string]any, 2)
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.AdCopyID != nil {
		conds["ad_copy_id"] = *f.AdCopyID
	}
	return conds
}
