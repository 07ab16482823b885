package rules

import (
	"time"

	"github.com/shopspring/decimal"

	"traza/entities"
)

const (
	MinHarvestDays    = 90
	MaxHarvestDays    = 365
	MaxPackagingDelay = 24 * time.Hour
)

var (
	MinTransportTemp = decimal.NewFromInt(10)
	MaxTransportTemp = decimal.NewFromInt(15)

	// Declared bounds of the recorded minimum/maximum temperatures.
	LowestRecordedTemp  = decimal.NewFromInt(-20)
	HighestRecordedTemp = decimal.NewFromInt(30)
)

const (
	ReasonHarvestNotAfterSowing = "harvest date must be after sowing date"
	ReasonHarvestTooSoon        = "sowing-to-harvest period is too short (minimum 90 days)"
	ReasonHarvestTooLate        = "sowing-to-harvest period is too long (maximum 365 days)"
	ReasonDatesValid            = "valid dates"

	ReasonTempTooLow  = "transport temperature too low (minimum 10°C)"
	ReasonTempTooHigh = "transport temperature too high (optimal 10-15°C)"
	ReasonTempValid   = "temperature within range"

	ReasonPackagingNotAfterWash = "packaging must happen after washing"
	ReasonPackagingTooLate      = "packaging must happen within 24 hours of washing"
	ReasonProcessValid          = "valid transformation process"

	ReasonMinTempOutOfRange = "minimum temperature must be at least -20°C"
	ReasonMaxTempOutOfRange = "maximum temperature must be at most 30°C"
	ReasonMinAboveMax       = "minimum temperature cannot exceed maximum temperature"
	ReasonBoundsValid       = "temperature bounds within range"

	ReasonInvalidStatus = "invalid quality control status"
	ReasonStatusValid   = "valid status"
)

// ValidateHarvestDates checks that harvest follows sowing by 90 to 365 days, both
// inclusive. Inputs may be dates or "YYYY-MM-DD" strings; a non-nil error is always a
// *FormatError.
func ValidateHarvestDates(sowing, harvest any) (bool, string, error) {
	s, err := ParseDate("fecha_siembra", sowing)
	if err != nil {
		return false, err.Error(), err
	}
	h, err := ParseDate("fecha_cosecha", harvest)
	if err != nil {
		return false, err.Error(), err
	}
	ok, reason := CheckHarvestWindow(s, h)
	return ok, reason, nil
}

// CheckHarvestWindow is the rule behind ValidateHarvestDates on parsed dates.
func CheckHarvestWindow(sowing, harvest time.Time) (bool, string) {
	sowing, harvest = dateOf(sowing), dateOf(harvest)
	if !harvest.After(sowing) {
		return false, ReasonHarvestNotAfterSowing
	}
	days := int(harvest.Sub(sowing) / (24 * time.Hour))
	if days < MinHarvestDays {
		return false, ReasonHarvestTooSoon
	}
	if days > MaxHarvestDays {
		return false, ReasonHarvestTooLate
	}
	return true, ReasonDatesValid
}

// ValidateTransportTemperature checks that the average transport temperature lies in
// [10, 15] °C using exact decimal comparison.
func ValidateTransportTemperature(average any) (bool, string, error) {
	avg, err := ParseDecimal("temperatura_promedio", average)
	if err != nil {
		return false, err.Error(), err
	}
	ok, reason := CheckTransportTemperature(avg)
	return ok, reason, nil
}

func CheckTransportTemperature(avg decimal.Decimal) (bool, string) {
	if avg.LessThan(MinTransportTemp) {
		return false, ReasonTempTooLow
	}
	if avg.GreaterThan(MaxTransportTemp) {
		return false, ReasonTempTooHigh
	}
	return true, ReasonTempValid
}

// ValidateTransformationProcess checks that packaging happens after washing and no more
// than 24 hours later (exactly 24h is accepted).
func ValidateTransformationProcess(washedAt, packagedAt any) (bool, string, error) {
	w, err := ParseTimestamp("fecha_lavado", washedAt)
	if err != nil {
		return false, err.Error(), err
	}
	p, err := ParseTimestamp("fecha_empaquetado", packagedAt)
	if err != nil {
		return false, err.Error(), err
	}
	ok, reason := CheckProcessWindow(w, p)
	return ok, reason, nil
}

func CheckProcessWindow(washedAt, packagedAt time.Time) (bool, string) {
	if !packagedAt.After(washedAt) {
		return false, ReasonPackagingNotAfterWash
	}
	if packagedAt.Sub(washedAt) > MaxPackagingDelay {
		return false, ReasonPackagingTooLate
	}
	return true, ReasonProcessValid
}

// ValidateTemperatureBounds checks the declared ranges of the recorded minimum (>= -20)
// and maximum (<= 30) transport temperatures.
func ValidateTemperatureBounds(minimum, maximum any) (bool, string, error) {
	lo, err := ParseDecimal("temperatura_minima", minimum)
	if err != nil {
		return false, err.Error(), err
	}
	hi, err := ParseDecimal("temperatura_maxima", maximum)
	if err != nil {
		return false, err.Error(), err
	}
	if lo.LessThan(LowestRecordedTemp) {
		return false, ReasonMinTempOutOfRange, nil
	}
	if hi.GreaterThan(HighestRecordedTemp) {
		return false, ReasonMaxTempOutOfRange, nil
	}
	if lo.GreaterThan(hi) {
		return false, ReasonMinAboveMax, nil
	}
	return true, ReasonBoundsValid, nil
}

func ValidateControlStatus(status string) (bool, string) {
	switch entities.ControlStatus(status) {
	case entities.ControlApproved, entities.ControlRejected, entities.ControlPending:
		return true, ReasonStatusValid
	}
	return false, ReasonInvalidStatus
}
