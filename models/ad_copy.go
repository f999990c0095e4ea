package models

import (
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdCopy is one piece of advertising text inside a campaign.
// UserID is copied from the owning campaign when the row is created.
type AdCopy struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CampaignID   uuid.UUID `gorm:"type:uuid;not null;index:idx_ad_copies_campaign_id" json:"campaignId"`
	UserID       string    `gorm:"type:varchar(255);not null;index:idx_ad_copies_user_id" json:"userId"`
	Platform     *string   `gorm:"type:varchar(100)" json:"platform,omitempty"`
	Headline     *string   `gorm:"type:varchar(255)" json:"headline,omitempty"`
	PrimaryText  string    `gorm:"type:text;not null" json:"primaryText"`
	Description  *string   `gorm:"type:text" json:"description,omitempty"`
	CallToAction *string   `gorm:"type:varchar(100)" json:"callToAction,omitempty"`
	Tone         *string   `gorm:"type:varchar(100)" json:"tone,omitempty"`
	VariantLabel *string   `gorm:"type:varchar(100)" json:"variantLabel,omitempty"`
	URL          *string   `gorm:"type:varchar(2048)" json:"url,omitempty"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name for the model
func (AdCopy) TableName() string {
	return "ad_copies"
}

// BeforeCreate is called before creating a new record
func (a *AdCopy) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = utils.UTCNow()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	return nil
}

// AdCopyFilter represents filter criteria for ad copies
type AdCopyFilter struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	CampaignID *uuid.UUID `json:"campaign_id,omitempty"`
	UserID     *string    `json:"user_id,omitempty"`
}

// Conditions returns the column equality predicates of the filter
func (f AdCopyFilter) Conditions() map[string]any {
	conds := make(map[string]any, 3)
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.CampaignID != nil {
		conds["campaign_id"] = *f.CampaignID
	}
	if f.UserID != nil {
		conds["user_id"] = *f.UserID
	}
	return conds
}
