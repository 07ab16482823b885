package rules

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Declared fixed-point precision of the stored decimals.
const (
	AreaPlaces        int32 = 2
	TemperaturePlaces int32 = 1
	PHPlaces          int32 = 1
	BrixPlaces        int32 = 1
)

// Every date, timestamp and decimal leaving the service is written by the functions
// below, whichever path produced the value.

func FormatDate(d datatypes.Date) string {
	return dateOf(time.Time(d)).Format(DateLayout)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func FormatTimestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimestamp(*t)
	return &s
}

func FormatDecimal(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

func FormatNullDecimal(d decimal.NullDecimal, places int32) *string {
	if !d.Valid {
		return nil
	}
	s := FormatDecimal(d.Decimal, places)
	return &s
}
