package utils

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseUUID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		input   string
		want    uuid.UUID
		wantErr error
	}{
		{name: "Canonical", input: id.String(), want: id},
		{name: "Padded", input: "  " + id.String() + "\n", want: id},
		{name: "Empty", input: "", wantErr: ErrEmptyUUID},
		{name: "Blank", input: "   ", wantErr: ErrEmptyUUID},
		{name: "Garbage", input: "campaign-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUUID(tt.input)
			if tt.want == uuid.Nil {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Equal(t, uuid.Nil, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2024-02-29", FormatDate(got))

	for _, bad := range []string{"2023-02-29", "2024-3-1", "01/03/2024", "2024-03-01T00:00:00Z", ""} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestUTCNow(t *testing.T) {
	now := UTCNow()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestFitsAmountColumn(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "0", want: true},
		{input: "12.5", want: true},
		{input: "1.230", want: true},
		{input: "999999999999.99", want: true},
		{input: "-999999999999.99", want: true},
		{input: "1.239", want: false},
		{input: "0.001", want: false},
		{input: "1000000000000", want: false},
		{input: "100000000000000", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FitsAmountColumn(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestOptional(t *testing.T) {
	t.Run("ZeroIsAbsent", func(t *testing.T) {
		var o Optional[string]
		assert.False(t, o.IsSet())
		assert.False(t, o.IsNull())
		_, ok := o.Get()
		assert.False(t, ok)
	})

	t.Run("Some", func(t *testing.T) {
		o := Some("hello")
		assert.True(t, o.IsSet())
		assert.False(t, o.IsNull())
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, "hello", v)
		assert.Equal(t, "hello", o.ColumnValue())
	})

	t.Run("Null", func(t *testing.T) {
		o := Null[string]()
		assert.True(t, o.IsSet())
		assert.True(t, o.IsNull())
		assert.Nil(t, o.ColumnValue())
	})
}

func TestOptionalJSON(t *testing.T) {
	type patch struct {
		Name  Optional[string] `json:"name"`
		Notes Optional[string] `json:"notes"`
		Tone  Optional[string] `json:"tone"`
	}

	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Spring Sale","notes":null}`), &p))

	name, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Spring Sale", name)
	assert.True(t, p.Notes.IsNull())
	assert.False(t, p.Tone.IsSet())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Spring Sale","notes":null,"tone":null}`, string(out))

	var bad patch
	assert.Error(t, json.Unmarshal([]byte(`{"name":42}`), &bad))
}
