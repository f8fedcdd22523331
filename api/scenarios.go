/*
scenarios.go - Preset calculations for demos and smoke tests

PURPOSE:

	Provides named, ready-made inputs that exercise the interesting paths
	through both calculators: each tax band, pension and student loan
	deductions, monthly scaling and non-standard work schedules.

AVAILABLE SCENARIOS:

	hourly-contractor:  $40/hour on a standard week
	annual-salary:      $30,000 a year broken down to an hourly rate
	part-time:          $18/hour, 6 hours x 3 days x 48 weeks
	basic-rate:         £30,000, basic rate only
	with-pension:       £30,000 with a 10% pension contribution
	student-loan:       £35,000 repaying a student loan
	higher-rate:        £60,000 plus a £5,000 bonus
	additional-rate:    £150,000, all three bands
	monthly:            £2,500 a month

HOW SCENARIOS RUN:
 1. Look up the preset by id
 2. Send its request through the same validation as the live endpoints
 3. Return the preset and its result

USAGE VIA API:

	GET /api/scenarios
	GET /api/scenarios/with-pension

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description
 2. Set exactly one of convert or ukTax

SEE ALSO:
  - handlers.go: ListScenarios, RunScenario handlers
*/
package api

import (
	"fmt"
	"net/http"

	"github.com/warp/salary-engine/period"
)

const (
	categoryConvert = "convert"
	categoryUKTax   = "uk_tax"
)

type scenario struct {
	ID          string
	Name        string
	Description string

	convert *ConvertRequest
	ukTax   *UKTaxRequest
}

func (s scenario) category() string {
	if s.convert != nil {
		return categoryConvert
	}
	return categoryUKTax
}

func (s scenario) dto() ScenarioDTO {
	return ScenarioDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.category(),
	}
}

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []scenario{
	{
		ID:          "hourly-contractor",
		Name:        "Hourly Contractor",
		Description: "$40 an hour, 8 hours a day, 5 days a week, 52 weeks a year",
		convert: &ConvertRequest{
			Amount:       40,
			Period:       string(period.Hourly),
			HoursPerDay:  period.Float64(8),
			DaysPerWeek:  period.Float64(5),
			WeeksPerYear: period.Float64(52),
		},
	},
	{
		ID:          "annual-salary",
		Name:        "Annual Salary",
		Description: "$30,000 a year on the default schedule",
		convert:     &ConvertRequest{Amount: 30000, Period: string(period.Annually)},
	},
	{
		ID:          "part-time",
		Name:        "Part Time",
		Description: "$18 an hour, 6 hours a day, 3 days a week, 48 weeks a year",
		convert: &ConvertRequest{
			Amount:       18,
			Period:       string(period.Hourly),
			HoursPerDay:  period.Float64(6),
			DaysPerWeek:  period.Float64(3),
			WeeksPerYear: period.Float64(48),
		},
	},
	{
		ID:          "basic-rate",
		Name:        "Basic Rate Taxpayer",
		Description: "£30,000 a year with no extras",
		ukTax:       &UKTaxRequest{Amount: 30000, Period: "annually"},
	},
	{
		ID:          "with-pension",
		Name:        "Pension Contributor",
		Description: "£30,000 a year paying 10% into a pension",
		ukTax:       &UKTaxRequest{Amount: 30000, Period: "annually", Pension: 10},
	},
	{
		ID:          "student-loan",
		Name:        "Graduate",
		Description: "£35,000 a year repaying a student loan",
		ukTax:       &UKTaxRequest{Amount: 35000, Period: "annually", StudentLoan: true},
	},
	{
		ID:          "higher-rate",
		Name:        "Higher Rate Taxpayer",
		Description: "£60,000 a year plus a £5,000 bonus and £2,000 of benefits",
		ukTax: &UKTaxRequest{
			Amount:          60000,
			Period:          "annually",
			Bonus:           5000,
			TaxableBenefits: 2000,
			Pension:         5,
		},
	},
	{
		ID:          "additional-rate",
		Name:        "Additional Rate Taxpayer",
		Description: "£150,000 a year, reaching all three income tax bands",
		ukTax:       &UKTaxRequest{Amount: 150000, Period: "annually"},
	},
	{
		ID:          "monthly",
		Name:        "Monthly Pay",
		Description: "£2,500 a month, results shown per month",
		ukTax:       &UKTaxRequest{Amount: 2500, Period: "monthly"},
	},
}

func findScenario(id string) (scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return scenario{}, false
}

func (h *Handler) runScenario(r *http.Request, s scenario) (*ScenarioRunResponse, error) {
	resp := &ScenarioRunResponse{Scenario: s.dto()}

	switch {
	case s.convert != nil:
		out, err := h.convert(r, *s.convert)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		resp.Convert = out
	case s.ukTax != nil:
		in, err := s.ukTax.toInput()
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		out, err := h.ukTax(r, in)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		resp.UKTax = out
	default:
		return nil, fmt.Errorf("scenario %s has no calculation", s.ID)
	}

	return resp, nil
}
