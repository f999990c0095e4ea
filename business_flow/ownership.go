package businessflow

import (
	"context"
	"strings"

	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/repository"
	"github.com/amirphl/copydesk/utils"
	"github.com/google/uuid"
)

// resource names an owned table for guard errors
type resource struct {
	name     string
	notFound error
}

var (
	campaignResource = resource{name: "Campaign", notFound: ErrCampaignNotFound}
	adCopyResource   = resource{name: "Ad copy", notFound: ErrAdCopyNotFound}
)

// notFoundError is returned for both missing and foreign rows
func (r resource) notFoundError() *BusinessError {
	return NewBusinessError(CodeNotFound, r.name+" not found", r.notFound)
}

type ownedLookup[T any, F repository.Filter] interface {
	First(ctx context.Context, filter F) (*T, error)
}

// fetchOwned returns the row matching filter, whose predicates must include the owner.
// The owner predicate is evaluated by the store, never after the fetch.
func fetchOwned[T any, F repository.Filter](ctx context.Context, repo ownedLookup[T, F], res resource, filter F) (*T, error) {
	row, err := repo.First(ctx, filter)
	if err != nil {
		return nil, NewBusinessError(CodeInternal, "Failed to look up "+strings.ToLower(res.name), err)
	}
	if row == nil {
		return nil, res.notFoundError()
	}
	return row, nil
}

// guardCampaign returns the campaign when it exists and belongs to userID
func guardCampaign(ctx context.Context, repo repository.CampaignRepository, id uuid.UUID, userID string) (*models.Campaign, error) {
	filter := models.CampaignFilter{ID: &id, UserID: &userID}
	return fetchOwned[models.Campaign, models.CampaignFilter](ctx, repo, campaignResource, filter)
}

// guardAdCopyChain walks ad copy -> campaign, both scoped to userID
func guardAdCopyChain(
	ctx context.Context,
	adCopyRepo repository.AdCopyRepository,
	campaignRepo repository.CampaignRepository,
	id uuid.UUID,
	userID string,
) (*models.AdCopy, error) {
	filter := models.AdCopyFilter{ID: &id, UserID: &userID}
	adCopy, err := fetchOwned[models.AdCopy, models.AdCopyFilter](ctx, adCopyRepo, adCopyResource, filter)
	if err != nil {
		return nil, err
	}

	if _, err := guardCampaign(ctx, campaignRepo, adCopy.CampaignID, userID); err != nil {
		return nil, err
	}
	return adCopy, nil
}

// parseID turns a caller supplied id into a UUID or a validation error
func parseID(raw string) (uuid.UUID, error) {
	id, err := utils.ParseUUID(raw)
	if err != nil {
		return uuid.Nil, validationError(ErrInvalidID)
	}
	return id, nil
}
