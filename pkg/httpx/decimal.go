package httpx

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DecimalSpec is the fixed-point shape of a numeric request field.
type DecimalSpec struct {
	MaxDigits int32
	Places    int32
	Min       *decimal.Decimal
	Max       *decimal.Decimal
}

func Bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// CheckDecimal validates raw against ds and records a problem under field in errs.
// Empty raw is left to the required/omitempty tags.
func CheckDecimal(errs FieldErrors, field string, raw json.Number, ds DecimalSpec) {
	if raw == "" {
		return
	}
	d, err := decimal.NewFromString(raw.String())
	if err != nil {
		errs[field] = "a valid number is required"
		return
	}
	if !d.Equal(d.Truncate(ds.Places)) {
		errs[field] = fmt.Sprintf("ensure that there are no more than %d decimal places", ds.Places)
		return
	}
	if d.Abs().GreaterThanOrEqual(decimal.New(1, ds.MaxDigits-ds.Places)) {
		errs[field] = fmt.Sprintf("ensure that there are no more than %d digits in total", ds.MaxDigits)
		return
	}
	if ds.Min != nil && d.LessThan(*ds.Min) {
		errs[field] = fmt.Sprintf("ensure this value is greater than or equal to %s", ds.Min)
		return
	}
	if ds.Max != nil && d.GreaterThan(*ds.Max) {
		errs[field] = fmt.Sprintf("ensure this value is less than or equal to %s", ds.Max)
	}
}

// Optional turns an absent number into an untyped nil for the services.
func Optional(raw json.Number) any {
	if raw == "" {
		return nil
	}
	return raw
}
