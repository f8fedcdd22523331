package period

// Float64 returns a pointer to v, for filling optional schedule fields.
func Float64(v float64) *float64 { return &v }

// Convert expresses in.Amount in every pay period.
//
// The amount is first reduced to an hourly rate using the schedule, then
// every other period is built up multiplicatively from that rate, so
// Daily == Hourly*HoursPerDay, Weekly == Daily*DaysPerWeek and
// Annually == Monthly*12 hold exactly. An unknown period yields all zeros.
func Convert(in Input) Result {
	s := in.Schedule()
	hourly := HourlyRate(in.Amount, in.Period, s)

	daily := hourly * s.HoursPerDay
	weekly := daily * s.DaysPerWeek
	monthly := (weekly * s.WeeksPerYear) / MonthsPerYear
	annually := monthly * MonthsPerYear

	return Result{
		Hourly:   hourly,
		Daily:    daily,
		Weekly:   weekly,
		Monthly:  monthly,
		Annually: annually,
	}
}

// HourlyRate reduces amount, expressed per p, to an hourly rate under s.
func HourlyRate(amount float64, p PayPeriod, s Schedule) float64 {
	switch p {
	case Hourly:
		return amount
	case Daily:
		return amount / s.HoursPerDay
	case Weekly:
		return amount / (s.HoursPerDay * s.DaysPerWeek)
	case Monthly:
		return amount / (s.HoursPerDay * s.DaysPerWeek * s.WeeksPerYear / MonthsPerYear)
	case Annually:
		return amount / (s.HoursPerDay * s.DaysPerWeek * s.WeeksPerYear)
	default:
		return 0
	}
}
