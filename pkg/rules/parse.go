package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const DateLayout = "2006-01-02"

// FormatError reports an input that cannot be read as the date, timestamp or decimal a
// rule expects. It is distinct from a rule verdict: the value never reached the rule.
type FormatError struct {
	Field string
	Value any
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, fmt.Sprint(e.Value), e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, fmt.Sprint(e.Value))
}

func (e *FormatError) Unwrap() error { return e.Err }

func formatErr(field string, v any, err error) *FormatError {
	return &FormatError{Field: field, Value: v, Err: err}
}

// Present reports whether a raw input carries a value: nil, nil pointers, blank strings
// and zero times count as absent.
func Present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case *string:
		return t != nil && strings.TrimSpace(*t) != ""
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	case datatypes.Date:
		return !time.Time(t).IsZero()
	case *datatypes.Date:
		return t != nil && !time.Time(*t).IsZero()
	case *decimal.Decimal:
		return t != nil
	case decimal.NullDecimal:
		return t.Valid
	case json.Number:
		return t != ""
	}
	return true
}

// ParseDate reads a calendar date from a time value, a datatypes.Date or a "YYYY-MM-DD"
// string. The result is midnight UTC of that date.
func ParseDate(field string, v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
	case time.Time:
		return dateOf(t), nil
	case *time.Time:
		if t != nil {
			return dateOf(*t), nil
		}
	case datatypes.Date:
		return dateOf(time.Time(t)), nil
	case *datatypes.Date:
		if t != nil {
			return dateOf(time.Time(*t)), nil
		}
	case string:
		d, err := time.Parse(DateLayout, strings.TrimSpace(t))
		if err != nil {
			return time.Time{}, formatErr(field, v, fmt.Errorf("expected YYYY-MM-DD"))
		}
		return d, nil
	case *string:
		if t != nil {
			return ParseDate(field, *t)
		}
	default:
		return time.Time{}, formatErr(field, v, fmt.Errorf("unsupported type %T", v))
	}
	return time.Time{}, formatErr(field, v, fmt.Errorf("value is required"))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// ParseTimestamp reads an instant from a time value or an ISO-8601 string. A trailing
// "Z" is rewritten to "+00:00" first; strings without an offset are taken as UTC.
func ParseTimestamp(field string, v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		s := strings.TrimSpace(t)
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, formatErr(field, v, fmt.Errorf("expected ISO-8601 timestamp"))
	case *string:
		if t != nil {
			return ParseTimestamp(field, *t)
		}
	default:
		return time.Time{}, formatErr(field, v, fmt.Errorf("unsupported type %T", v))
	}
	return time.Time{}, formatErr(field, v, fmt.Errorf("value is required"))
}

// ParseDecimal reads an exact decimal. Floats are converted through their shortest
// decimal text, so 9.9 becomes exactly 9.9.
func ParseDecimal(field string, v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case nil:
	case decimal.Decimal:
		return t, nil
	case *decimal.Decimal:
		if t != nil {
			return *t, nil
		}
	case decimal.NullDecimal:
		if t.Valid {
			return t.Decimal, nil
		}
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return decimal.Decimal{}, formatErr(field, v, fmt.Errorf("expected decimal number"))
		}
		return d, nil
	case *string:
		if t != nil {
			return ParseDecimal(field, *t)
		}
	case json.Number:
		return ParseDecimal(field, string(t))
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int32:
		return decimal.NewFromInt32(t), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Decimal{}, formatErr(field, v, fmt.Errorf("not a finite number"))
		}
		return decimal.NewFromFloat(t), nil
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return decimal.Decimal{}, formatErr(field, v, fmt.Errorf("not a finite number"))
		}
		return decimal.NewFromFloat32(t), nil
	default:
		return decimal.Decimal{}, formatErr(field, v, fmt.Errorf("unsupported type %T", v))
	}
	return decimal.Decimal{}, formatErr(field, v, fmt.Errorf("value is required"))
}
