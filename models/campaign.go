// Package models contains the persisted entities and the filters used to query them
package models

import (
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign groups ad copies written for one marketing goal
type Campaign struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(255);not null;index:idx_campaigns_user_id" json:"userId"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Objective      *string   `gorm:"type:varchar(255)" json:"objective,omitempty"`
	ProductName    *string   `gorm:"type:varchar(255)" json:"productName,omitempty"`
	TargetAudience *string   `gorm:"type:text" json:"targetAudience,omitempty"`
	Notes          *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"not null;index:idx_campaigns_created_at" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

// TableName returns the table name for the model
func (Campaign) TableName() string {
	return "campaigns"
}

// BeforeCreate is called before creating a new record
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = utils.UTCNow()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	return nil
}

// CampaignFilter represents filter criteria for campaigns
type CampaignFilter struct {
	ID     *uuid.UUID `json:"id,omitempty"`
	UserID *string    `json:"user_id,omitempty"`
}

// Conditions returns the column equality predicates of the filter
func (f CampaignFilter) Conditions() map[string]any {
	conds := make(map[string]any, 2)
	if f.ID != nil {
		conds["id"] = *f.ID
	}
	if f.UserID != nil {
		conds["user_id"] = *f.UserID
	}
	return conds
}
