package rules

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPresent(t *testing.T) {
	var nilTime *time.Time
	assert.False(t, Present(nil))
	assert.False(t, Present(""))
	assert.False(t, Present("   "))
	assert.False(t, Present(time.Time{}))
	assert.False(t, Present(nilTime))
	assert.False(t, Present(decimal.NullDecimal{}))

	assert.True(t, Present("2024-01-01"))
	assert.True(t, Present(time.Now()))
	assert.True(t, Present(0))
	assert.True(t, Present(decimal.Zero))
}

func TestParseDateNormalizesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	d, err := ParseDate("f", time.Date(2024, 3, 31, 22, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("f", datatypes.Date(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-31", d.Format(DateLayout))
}

func TestParseTimestampRewritesZulu(t *testing.T) {
	ts, err := ParseTimestamp("f", "2024-06-01T08:00:00Z")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)))
	_, offset := ts.Zone()
	assert.Equal(t, 0, offset)
}

func TestParseDecimalKeepsExactText(t *testing.T) {
	cases := map[string]any{
		"9.9":  9.9,
		"15.1": "15.1",
		"12":   json.Number("12"),
		"-20":  int64(-20),
	}
	for want, in := range cases {
		d, err := ParseDecimal("f", in)
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString(want)), "input %v", in)
	}
}
