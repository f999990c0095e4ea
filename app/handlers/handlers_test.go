package handlers

import (
	"testing"

	"github.com/amirphl/copydesk/app/dto"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/amirphl/copydesk/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidationMessages(t *testing.T) {
	h := newBaseHandler(0, nil, "test")
	id := "0c9f0d3e-5f7c-4d6b-8f39-1b1f4c2a7e55"

	tests := []struct {
		name string
		req  any
		want []string
	}{
		{
			name: "ValidCreate",
			req:  &dto.CreateCampaignRequest{Name: "Spring Sale"},
		},
		{
			name: "MissingName",
			req:  &dto.CreateCampaignRequest{},
			want: []string{"name is required"},
		},
		{
			name: "AbsentOptionalSkipsRules",
			req:  &dto.UpdateAdCopyRequest{ID: id, CampaignID: id},
		},
		{
			name: "NullOptionalSkipsRules",
			req:  &dto.UpdateAdCopyRequest{ID: id, CampaignID: id, URL: utils.Null[string]()},
		},
		{
			name: "PresentOptionalIsValidated",
			req:  &dto.UpdateAdCopyRequest{ID: id, CampaignID: id, URL: utils.Some("not a url")},
			want: []string{"url must be an absolute URL"},
		},
		{
			name: "BadIDs",
			req:  &dto.DeleteAdCopyRequest{ID: "x", CampaignID: id},
			want: []string{"ID must be a valid UUID"},
		},
		{
			name: "NegativeSpend",
			req:  &dto.LogAdPerformanceRequest{AdCopyID: id, Spend: utils.ToPtr(decimal.NewFromInt(-1))},
			want: []string{"spend must be greater than or equal to 0"},
		},
		{
			name: "SpendBeyondCentPrecision",
			req:  &dto.LogAdPerformanceRequest{AdCopyID: id, Spend: utils.ToPtr(decimal.RequireFromString("1.239"))},
			want: []string{"spend must be below 1000000000000 with at most 2 decimal places"},
		},
		{
			name: "SpendOverflowsColumn",
			req:  &dto.LogAdPerformanceRequest{AdCopyID: id, Spend: utils.ToPtr(decimal.New(1, 12))},
			want: []string{"spend must be below 1000000000000 with at most 2 decimal places"},
		},
		{
			name: "SpendAtColumnLimit",
			req:  &dto.LogAdPerformanceRequest{AdCopyID: id, Spend: utils.ToPtr(decimal.RequireFromString("999999999999.990"))},
		},
		{
			name: "BadDateAndCurrency",
			req: &dto.LogAdPerformanceRequest{
				AdCopyID: id,
				Date:     utils.ToPtr("2024/03/01"),
				Currency: utils.ToPtr("QQQ"),
			},
			want: []string{"date must be formatted as YYYY-MM-DD", "currency must be an ISO-4217 currency code"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.validationMessages(tt.req))
		})
	}
}

func TestStatusByCode(t *testing.T) {
	assert.Equal(t, fiber.StatusUnauthorized, statusByCode[businessflow.CodeUnauthorized])
	assert.Equal(t, fiber.StatusNotFound, statusByCode[businessflow.CodeNotFound])
	assert.Equal(t, fiber.StatusBadRequest, statusByCode[businessflow.CodeValidation])
	assert.Equal(t, fiber.StatusInternalServerError, statusByCode[businessflow.CodeInternal])
}
