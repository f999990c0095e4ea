package testing

import (
	"fmt"
	"time"

	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/utils"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestCampaign creates a campaign owned by userID
func (tf *TestFixtures) CreateTestCampaign(userID, name string) (*models.Campaign, error) {
	campaign := &models.Campaign{
		UserID:    userID,
		Name:      name,
		Objective: utils.ToPtr("conversions"),
	}

	if err := tf.DB.DB.Create(campaign).Error; err != nil {
		return nil, fmt.Errorf("failed to create test campaign: %w", err)
	}

	return campaign, nil
}

// CreateTestAdCopy creates an ad copy inside campaign, owned by the campaign owner.
// Every optional field except Tone is populated.
func (tf *TestFixtures) CreateTestAdCopy(campaign *models.Campaign, primaryText string) (*models.AdCopy, error) {
	adCopy := &models.AdCopy{
		CampaignID:  campaign.ID,
		UserID:      campaign.UserID,
		PrimaryText:  primaryText,
		Platform:     utils.ToPtr("facebook"),
		Headline:     utils.ToPtr("Spring deals"),
		Description:  utils.ToPtr("Limited time offer"),
		CallToAction: utils.ToPtr("SHOP_NOW"),
		VariantLabel: utils.ToPtr("A"),
		URL:          utils.ToPtr("https://example.com/spring"),
	}

	if err := tf.DB.DB.Create(adCopy).Error; err != nil {
		return nil, fmt.Errorf("failed to create test ad copy: %w", err)
	}

	return adCopy, nil
}

// CreateTestPerformanceRecord logs one measurement against adCopy
func (tf *TestFixtures) CreateTestPerformanceRecord(adCopy *models.AdCopy, date time.Time, impressions, clicks int64, spend string) (*models.PerformanceRecord, error) {
	amount, err := decimal.NewFromString(spend)
	if err != nil {
		return nil, fmt.Errorf("invalid spend %q: %w", spend, err)
	}

	record := &models.PerformanceRecord{
		AdCopyID:    adCopy.ID,
		Date:        utils.ToPtr(datatypes.Date(date)),
		Impressions: utils.ToPtr(impressions),
		Clicks:      utils.ToPtr(clicks),
		Spend:       &amount,
		Currency:    utils.ToPtr("USD"),
	}

	if err := tf.DB.DB.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create test performance record: %w", err)
	}

	return record, nil
}
