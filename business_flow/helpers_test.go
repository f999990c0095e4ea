package businessflow_test

import (
	"testing"

	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/amirphl/copydesk/repository"
	testingutil "github.com/amirphl/copydesk/testing"
	"github.com/stretchr/testify/require"
)

type flowEnv struct {
	db          *testingutil.TestDB
	fixtures    *testingutil.TestFixtures
	campaigns   repository.CampaignRepository
	adCopies    repository.AdCopyRepository
	records     repository.PerformanceRecordRepository
	campaign    businessflow.CampaignFlow
	adCopy      businessflow.AdCopyFlow
	performance businessflow.PerformanceFlow
}

func newFlowEnv(t *testing.T) *flowEnv {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = testDB.TeardownTestDB() })

	campaignRepo := repository.NewCampaignRepository(testDB.DB)
	adCopyRepo := repository.NewAdCopyRepository(testDB.DB)
	performanceRepo := repository.NewPerformanceRecordRepository(testDB.DB)

	return &flowEnv{
		db:          testDB,
		fixtures:    testingutil.NewTestFixtures(testDB),
		campaigns:   campaignRepo,
		adCopies:    adCopyRepo,
		records:     performanceRepo,
		campaign:    businessflow.NewCampaignFlow(campaignRepo, nil),
		adCopy:      businessflow.NewAdCopyFlow(campaignRepo, adCopyRepo, nil),
		performance: businessflow.NewPerformanceFlow(campaignRepo, adCopyRepo, performanceRepo, nil),
	}
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, businessflow.ErrorCode(err), "unexpected error: %v", err)
}
