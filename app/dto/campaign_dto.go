package dto

import (
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
)

// CreateCampaignRequest represents the request to create a campaign
type CreateCampaignRequest struct {
	Name           string  `json:"name" validate:"required,max=255"`
	Objective      *string `json:"objective,omitempty" validate:"omitempty,max=255"`
	ProductName    *string `json:"productName,omitempty" validate:"omitempty,max=255"`
	TargetAudience *string `json:"targetAudience,omitempty" validate:"omitempty,max=2000"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// UpdateCampaignRequest carries only the fields the caller supplied
type UpdateCampaignRequest struct {
	ID             string                 `json:"-" validate:"required,uuid"`
	Name           utils.Optional[string] `json:"name" validate:"omitempty,max=255"`
	Objective      utils.Optional[string] `json:"objective" validate:"omitempty,max=255"`
	ProductName    utils.Optional[string] `json:"productName" validate:"omitempty,max=255"`
	TargetAudience utils.Optional[string] `json:"targetAudience" validate:"omitempty,max=2000"`
	Notes          utils.Optional[string] `json:"notes" validate:"omitempty,max=2000"`
}

// GetCampaignRequest identifies a single campaign
type GetCampaignRequest struct {
	ID string `json:"-" validate:"required,uuid"`
}

// CampaignResponse is the public shape of a campaign
type CampaignResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Objective      *string   `json:"objective,omitempty"`
	ProductName    *string   `json:"productName,omitempty"`
	TargetAudience *string   `json:"targetAudience,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CampaignResult is returned by create, update and get
type CampaignResult struct {
	Campaign CampaignResponse `json:"campaign"`
}
