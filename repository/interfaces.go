// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/amirphl/copydesk/models"
	"github.com/google/uuid"
)

// Filter narrows a statement to rows whose columns equal the given values
type Filter interface {
	Conditions() map[string]any
}

type Repository[T any, F Filter] interface {
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	First(ctx context.Context, filter F) (*T, error)
	Count(ctx context.Context, filter F) (int64, error)
	Save(ctx context.Context, entity *T) error
}

// CampaignRepository defines operations for campaigns
type CampaignRepository interface {
	Repository[models.Campaign, models.CampaignFilter]
	ByUserID(ctx context.Context, userID string) ([]*models.Campaign, error)
	UpdateReturning(ctx context.Context, filter models.CampaignFilter, set map[string]any) (*models.Campaign, error)
}

// AdCopyRepository defines operations for ad copies
type AdCopyRepository interface {
	Repository[models.AdCopy, models.AdCopyFilter]
	ByCampaign(ctx context.Context, campaignID uuid.UUID, userID string) ([]*models.AdCopy, error)
	UpdateReturning(ctx context.Context, filter models.AdCopyFilter, set map[string]any) (*models.AdCopy, error)
	DeleteWhere(ctx context.Context, filter models.AdCopyFilter) (int64, error)
}

// PerformanceRecordRepository defines operations for performance records
type PerformanceRecordRepository interface {
	Repository[models.PerformanceRecord, models.PerformanceRecordFilter]
	ByAdCopyID(ctx context.Context, adCopyID uuid.UUID) ([]*models.PerformanceRecord, error)
}
