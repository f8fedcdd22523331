/*
Package period converts a salary figure between pay periods.

PURPOSE:
  Given an amount expressed per hour, day, week, month or year, produce the
  equivalent amount for every other period. All conversions go through an
  hourly rate and a work schedule (hours per day, days per week, weeks per
  year).

KEY CONCEPTS IN THIS FILE (types.go):
  - PayPeriod: the unit of time an amount is expressed in
  - Schedule:  the working pattern used to move between time units
  - Input/Result: the converter's contract

NO VALIDATION:
  The converter accepts any number. Zero or negative amounts convert
  proportionally, a zero schedule field divides by zero and the resulting
  Inf/NaN is returned as-is. Callers sanitize input first (see api/).

USAGE:
  res := period.Convert(period.Input{Amount: 40, Period: period.Hourly})
  // res.Daily == 320, res.Annually == 83200

SEE ALSO:
  - convert.go: The conversion algorithm
  - api/handlers.go: HTTP validation in front of Convert
*/
package period

// =============================================================================
// PAY PERIOD
// =============================================================================

// PayPeriod is the unit of time a salary amount is expressed in.
type PayPeriod string

const (
	Hourly   PayPeriod = "hourly"
	Daily    PayPeriod = "daily"
	Weekly   PayPeriod = "weekly"
	Monthly  PayPeriod = "monthly"
	Annually PayPeriod = "annually"
)

// All lists the pay periods in display order.
var All = []PayPeriod{Hourly, Daily, Weekly, Monthly, Annually}

// Valid reports whether p is one of the five known periods.
func (p PayPeriod) Valid() bool {
	switch p {
	case Hourly, Daily, Weekly, Monthly, Annually:
		return true
	}
	return false
}

// =============================================================================
// WORK SCHEDULE
// =============================================================================

const (
	DefaultHoursPerDay  = 8.0
	DefaultDaysPerWeek  = 5.0
	DefaultWeeksPerYear = 52.0

	MonthsPerYear = 12.0
)

// Schedule is a resolved working pattern.
type Schedule struct {
	HoursPerDay  float64
	DaysPerWeek  float64
	WeeksPerYear float64
}

// DefaultSchedule is a 40 hour week worked all year round.
func DefaultSchedule() Schedule {
	return Schedule{
		HoursPerDay:  DefaultHoursPerDay,
		DaysPerWeek:  DefaultDaysPerWeek,
		WeeksPerYear: DefaultWeeksPerYear,
	}
}

// HoursPerWeek returns HoursPerDay * DaysPerWeek.
func (s Schedule) HoursPerWeek() float64 { return s.HoursPerDay * s.DaysPerWeek }

// HoursPerYear returns the total hours worked in a year.
func (s Schedule) HoursPerYear() float64 { return s.HoursPerWeek() * s.WeeksPerYear }

// =============================================================================
// CONTRACT
// =============================================================================

// Input is a salary amount in one period plus an optional schedule.
// Nil schedule fields fall back to the defaults. A non-nil zero is kept
// and divides by zero.
type Input struct {
	Amount       float64
	Period       PayPeriod
	HoursPerDay  *float64
	DaysPerWeek  *float64
	WeeksPerYear *float64
}

// Schedule resolves the input's schedule, applying defaults for nil fields.
func (in Input) Schedule() Schedule {
	s := DefaultSchedule()
	if in.HoursPerDay != nil {
		s.HoursPerDay = *in.HoursPerDay
	}
	if in.DaysPerWeek != nil {
		s.DaysPerWeek = *in.DaysPerWeek
	}
	if in.WeeksPerYear != nil {
		s.WeeksPerYear = *in.WeeksPerYear
	}
	return s
}

// Result holds the converted amount for every pay period.
type Result struct {
	Hourly   float64 `json:"hourly"`
	Daily    float64 `json:"daily"`
	Weekly   float64 `json:"weekly"`
	Monthly  float64 `json:"monthly"`
	Annually float64 `json:"annually"`
}

// Get returns the amount for p, or 0 for an unknown period.
func (r Result) Get(p PayPeriod) float64 {
	switch p {
	case Hourly:
		return r.Hourly
	case Daily:
		return r.Daily
	case Weekly:
		return r.Weekly
	case Monthly:
		return r.Monthly
	case Annually:
		return r.Annually
	}
	return 0
}
