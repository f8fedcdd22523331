/*
validation.go - Request validation and mapping to calculator input

PURPOSE:
  The calculators accept any number and never fail. Rejecting nonsense
  before they run is the caller's job, and this is that caller. Each
  request type maps to a calculator input here, defaults applied.

RULES:
  Convert:
    amount > 0, period one of hourly/daily/weekly/monthly/annually
    (default hourly), hours_per_day in [1,24], days_per_week in [1,7],
    weeks_per_year in [1,52].
  UK tax:
    amount > 0, period monthly or annually (default annually),
    bonus/overtime/taxable_benefits >= 0, pension in [0,100],
    tax_code defaults to 1257L.

ERRORS:
  Sentinels for errors.Is(), wrapped in *ValidationError which names the
  offending field.
*/
package api

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/warp/salary-engine/period"
	"github.com/warp/salary-engine/uktax"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidAmount is returned when the salary amount is missing, zero or
	// negative.
	ErrInvalidAmount = errors.New("please enter a valid amount")

	// ErrInvalidPeriod is returned for an unknown pay period.
	ErrInvalidPeriod = errors.New("invalid pay period")

	// ErrOutOfRange is returned when a numeric field is outside its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrEmptyBatch is returned when a batch request has no items.
	ErrEmptyBatch = errors.New("batch has no items")

	// ErrBatchTooLarge is returned when a batch exceeds the configured limit.
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrNonFiniteResult is returned when a calculation overflows.
	ErrNonFiniteResult = errors.New("result is not a finite number")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError ties a validation failure to a request field.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Err: err}
}

// withPrefix re-roots a validation error under a parent field, for batch
// items.
func withPrefix(prefix string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Field: prefix + "." + verr.Field, Reason: verr.Reason, Err: verr.Err}
	}
	return err
}

// =============================================================================
// BOUNDS
// =============================================================================

const (
	minHoursPerDay  = 1
	maxHoursPerDay  = 24
	minDaysPerWeek  = 1
	maxDaysPerWeek  = 7
	minWeeksPerYear = 1
	maxWeeksPerYear = 52

	maxPensionPercent = 100
)

func checkRange(field string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v < lo || *v > hi {
		return invalid(field, ErrOutOfRange, fmt.Sprintf("must be between %g and %g", lo, hi))
	}
	return nil
}

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalid("amount", ErrInvalidAmount, "must be greater than zero")
	}
	return nil
}

func checkNonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalid(field, ErrOutOfRange, "must not be negative")
	}
	return nil
}

// =============================================================================
// MAPPING
// =============================================================================

func (req ConvertRequest) toInput() (period.Input, error) {
	if err := checkAmount(req.Amount); err != nil {
		return period.Input{}, err
	}

	p := period.Hourly
	if req.Period != "" {
		p = period.PayPeriod(strings.ToLower(strings.TrimSpace(req.Period)))
	}
	if !p.Valid() {
		return period.Input{}, invalid("period", ErrInvalidPeriod,
			"must be one of hourly, daily, weekly, monthly, annually")
	}

	if err := checkRange("hours_per_day", req.HoursPerDay, minHoursPerDay, maxHoursPerDay); err != nil {
		return period.Input{}, err
	}
	if err := checkRange("days_per_week", req.DaysPerWeek, minDaysPerWeek, maxDaysPerWeek); err != nil {
		return period.Input{}, err
	}
	if err := checkRange("weeks_per_year", req.WeeksPerYear, minWeeksPerYear, maxWeeksPerYear); err != nil {
		return period.Input{}, err
	}

	return period.Input{
		Amount:       req.Amount,
		Period:       p,
		HoursPerDay:  req.HoursPerDay,
		DaysPerWeek:  req.DaysPerWeek,
		WeeksPerYear: req.WeeksPerYear,
	}, nil
}

func (req UKTaxRequest) toInput() (uktax.Input, error) {
	if err := checkAmount(req.Amount); err != nil {
		return uktax.Input{}, err
	}

	p := uktax.Annually
	if req.Period != "" {
		p = uktax.PayPeriod(strings.ToLower(strings.TrimSpace(req.Period)))
	}
	if !p.Valid() {
		return uktax.Input{}, invalid("period", ErrInvalidPeriod, "must be monthly or annually")
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"bonus", req.Bonus},
		{"overtime", req.Overtime},
		{"taxable_benefits", req.TaxableBenefits},
	} {
		if err := checkNonNegative(f.name, f.v); err != nil {
			return uktax.Input{}, err
		}
	}

	pension := req.Pension
	if err := checkRange("pension", &pension, 0, maxPensionPercent); err != nil {
		return uktax.Input{}, err
	}

	taxCode := strings.ToUpper(strings.TrimSpace(req.TaxCode))
	if taxCode == "" {
		taxCode = uktax.DefaultTaxCode
	}

	return uktax.Input{
		Amount:             req.Amount,
		Period:             p,
		IsScotlandResident: req.IsScotlandResident,
		TaxCode:            taxCode,
		StudentLoan:        req.StudentLoan,
		Bonus:              req.Bonus,
		Overtime:           req.Overtime,
		TaxableBenefits:    req.TaxableBenefits,
		Pension:            pension,
	}, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
