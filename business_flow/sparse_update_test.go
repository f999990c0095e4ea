package businessflow

import (
	"testing"
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseUpdate(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		fields  map[string]presence
		want    map[string]any
		wantErr bool
	}{
		{
			name: "NothingSupplied",
			fields: map[string]presence{
				"name":  utils.Optional[string]{},
				"notes": utils.Optional[string]{},
			},
			wantErr: true,
		},
		{
			name: "OnlySuppliedColumns",
			fields: map[string]presence{
				"name":      utils.Some("Spring Sale"),
				"objective": utils.Optional[string]{},
			},
			want: map[string]any{"name": "Spring Sale", "updated_at": now},
		},
		{
			name: "NullBecomesNil",
			fields: map[string]presence{
				"notes": utils.Null[string](),
			},
			want: map[string]any{"notes": nil, "updated_at": now},
		},
		{
			name: "EmptyStringIsAValue",
			fields: map[string]presence{
				"tone": utils.Some(""),
			},
			want: map[string]any{"tone": "", "updated_at": now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sparseUpdate(tt.fields, now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsNoUpdateFields(err))
				assert.Equal(t, MsgNoUpdateFields, err.(*BusinessError).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireNonBlank(t *testing.T) {
	assert.NoError(t, requireNonBlank(utils.Optional[string]{}, ErrCampaignNameRequired))
	assert.NoError(t, requireNonBlank(utils.Some("Spring"), ErrCampaignNameRequired))

	for _, field := range []utils.Optional[string]{utils.Some(""), utils.Some("  "), utils.Null[string]()} {
		err := requireNonBlank(field, ErrCampaignNameRequired)
		require.Error(t, err)
		assert.Equal(t, CodeValidation, ErrorCode(err))
		assert.ErrorIs(t, err, ErrCampaignNameRequired)
	}
}

func TestIsCurrencyCode(t *testing.T) {
	assert.True(t, isCurrencyCode("USD"))
	assert.True(t, isCurrencyCode("EUR"))
	assert.False(t, isCurrencyCode("usd"))
	assert.False(t, isCurrencyCode("US"))
	assert.False(t, isCurrencyCode("USDT"))
	assert.False(t, isCurrencyCode("U5D"))
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, CodeInternal, ErrorCode(assert.AnError))
	assert.Equal(t, CodeNotFound, ErrorCode(campaignResource.notFoundError()))
	assert.True(t, IsNotFound(adCopyResource.notFoundError()))
	assert.True(t, IsAdCopyNotFound(adCopyResource.notFoundError()))
	assert.True(t, IsValidation(validationError(ErrInvalidID)))
}
