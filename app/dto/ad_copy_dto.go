package dto

import (
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
)

// CreateAdCopyRequest represents the request to add an ad copy to a campaign
type CreateAdCopyRequest struct {
	CampaignID   string  `json:"-" validate:"required,uuid"`
	Platform     *string `json:"platform,omitempty" validate:"omitempty,max=100"`
	Headline     *string `json:"headline,omitempty" validate:"omitempty,max=255"`
	PrimaryText  string  `json:"primaryText" validate:"required,max=5000"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	CallToAction *string `json:"callToAction,omitempty" validate:"omitempty,max=100"`
	Tone         *string `json:"tone,omitempty" validate:"omitempty,max=100"`
	VariantLabel *string `json:"variantLabel,omitempty" validate:"omitempty,max=100"`
	URL          *string `json:"url,omitempty" validate:"omitempty,url,max=2048"`
}

// UpdateAdCopyRequest carries only the fields the caller supplied
type UpdateAdCopyRequest struct {
	ID           string                 `json:"-" validate:"required,uuid"`
	CampaignID   string                 `json:"-" validate:"required,uuid"`
	Platform     utils.Optional[string] `json:"platform" validate:"omitempty,max=100"`
	Headline     utils.Optional[string] `json:"headline" validate:"omitempty,max=255"`
	PrimaryText  utils.Optional[string] `json:"primaryText" validate:"omitempty,max=5000"`
	Description  utils.Optional[string] `json:"description" validate:"omitempty,max=2000"`
	CallToAction utils.Optional[string] `json:"callToAction" validate:"omitempty,max=100"`
	Tone         utils.Optional[string] `json:"tone" validate:"omitempty,max=100"`
	VariantLabel utils.Optional[string] `json:"variantLabel" validate:"omitempty,max=100"`
	URL          utils.Optional[string] `json:"url" validate:"omitempty,url,max=2048"`
}

// DeleteAdCopyRequest identifies the ad copy to delete
type DeleteAdCopyRequest struct {
	ID         string `json:"-" validate:"required,uuid"`
	CampaignID string `json:"-" validate:"required,uuid"`
}

// ListAdCopiesRequest selects the campaign whose ad copies are listed
type ListAdCopiesRequest struct {
	CampaignID string `json:"-" validate:"required,uuid"`
}

// AdCopyResponse is the public shape of an ad copy
type AdCopyResponse struct {
	ID           uuid.UUID `json:"id"`
	CampaignID   uuid.UUID `json:"campaignId"`
	UserID       string    `json:"userId"`
	Platform     *string   `json:"platform,omitempty"`
	Headline     *string   `json:"headline,omitempty"`
	PrimaryText  string    `json:"primaryText"`
	Description  *string   `json:"description,omitempty"`
	CallToAction *string   `json:"callToAction,omitempty"`
	Tone         *string   `json:"tone,omitempty"`
	VariantLabel *string   `json:"variantLabel,omitempty"`
	URL          *string   `json:"url,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AdCopyResult is returned by create and update
type AdCopyResult struct {
	AdCopy AdCopyResponse `json:"adCopy"`
}

// DeleteAdCopyResponse acknowledges a delete
type DeleteAdCopyResponse struct {
	Success bool `json:"success"`
}
