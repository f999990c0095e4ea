package repository

import (
	"context"

	"github.com/amirphl/copydesk/models"
	"gorm.io/gorm"
)

// CampaignRepositoryImpl implements the CampaignRepository interface
type CampaignRepositoryImpl struct {
	*BaseRepository[models.Campaign, models.CampaignFilter]
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Campaign, models.CampaignFilter](db),
	}
}

// ByUserID retrieves every campaign owned by the user in creation order
func (r *CampaignRepositoryImpl) ByUserID(ctx context.Context, userID string) ([]*models.Campaign, error) {
	filter := models.CampaignFilter{UserID: &userID}
	return r.ByFilter(ctx, filter, "created_at ASC", 0, 0)
}
