package repository

import (
	"context"

	"github.com/amirphl/copydesk/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdCopyRepositoryImpl implements the AdCopyRepository interface
type AdCopyRepositoryImpl struct {
	*BaseRepository[models.AdCopy, models.AdCopyFilter]
}

// NewAdCopyRepository creates a new ad copy repository
func NewAdCopyRepository(db *gorm.DB) AdCopyRepository {
	return &AdCopyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AdCopy, models.AdCopyFilter](db),
	}
}

// ByCampaign retrieves the user's ad copies of one campaign in creation order
func (r *AdCopyRepositoryImpl) ByCampaign(ctx context.Context, campaignID uuid.UUID, userID string) ([]*models.AdCopy, error) {
	filter := models.AdCopyFilter{CampaignID: &campaignID, UserID: &userID}
	return r.ByFilter(ctx, filter, "created_at ASC", 0, 0)
}
