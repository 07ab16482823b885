package rules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "2024-03-31", FormatDate(datatypes.Date(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))))

	loc := time.FixedZone("COT", -5*3600)
	assert.Equal(t, "2024-06-01T13:00:00Z", FormatTimestamp(time.Date(2024, 6, 1, 8, 0, 0, 0, loc)))
	assert.Nil(t, FormatTimestampPtr(nil))

	assert.Equal(t, "12.50", FormatDecimal(decimal.NewFromFloat(12.5), AreaPlaces))
	assert.Equal(t, "10.0", FormatDecimal(decimal.NewFromInt(10), TemperaturePlaces))
	assert.Nil(t, FormatNullDecimal(decimal.NullDecimal{}, BrixPlaces))
	assert.Equal(t, "14.2", *FormatNullDecimal(decimal.NewNullDecimal(decimal.RequireFromString("14.2")), BrixPlaces))
}
