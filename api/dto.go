/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the calculation packages from the external API contract, allowing:
  - Optional fields and defaults that the pure calculators do not know about
  - Formatted display strings alongside raw numbers
  - Version evolution

NAMING CONVENTION:
  - *Request:  Request body types from clients
  - *Response: Response bodies
  - *DTO:      Nested response parts

TYPES:
  Period conversion:
    ConvertRequest, ConvertResponse, PeriodAmountsDTO

  UK tax:
    UKTaxRequest, UKTaxResponse, DeductionsDTO, UKTaxFormattedDTO,
    BatchUKTaxRequest, BatchUKTaxResponse

  Shared:
    MetadataDTO, MessageDTO, ScenarioDTO, ErrorResponse

VALIDATION:
  Validation is done in validation.go, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - validation.go: Request to calculator input mapping
*/
package api

import (
	"github.com/warp/salary-engine/money"
	"github.com/warp/salary-engine/period"
	"github.com/warp/salary-engine/uktax"
)

// =============================================================================
// PERIOD CONVERSION
// =============================================================================

// ConvertRequest is the request to convert a salary between pay periods.
// Missing schedule fields default to 8 hours, 5 days, 52 weeks.
type ConvertRequest struct {
	Amount       float64  `json:"amount"`
	Period       string   `json:"period,omitempty"`
	HoursPerDay  *float64 `json:"hours_per_day,omitempty"`
	DaysPerWeek  *float64 `json:"days_per_week,omitempty"`
	WeeksPerYear *float64 `json:"weeks_per_year,omitempty"`
}

// ConvertInputDTO echoes the resolved input, defaults applied.
type ConvertInputDTO struct {
	Amount       float64 `json:"amount"`
	Period       string  `json:"period"`
	HoursPerDay  float64 `json:"hours_per_day"`
	DaysPerWeek  float64 `json:"days_per_week"`
	WeeksPerYear float64 `json:"weeks_per_year"`
}

// PeriodAmountsDTO holds one display string per pay period.
type PeriodAmountsDTO struct {
	Hourly   string `json:"hourly"`
	Daily    string `json:"daily"`
	Weekly   string `json:"weekly"`
	Monthly  string `json:"monthly"`
	Annually string `json:"annually"`
}

// ConvertResponse is the result of a period conversion.
type ConvertResponse struct {
	Input     ConvertInputDTO  `json:"input"`
	Result    period.Result    `json:"result"`
	Formatted PeriodAmountsDTO `json:"formatted"`
	Metadata  MetadataDTO      `json:"metadata"`
}

// =============================================================================
// UK TAX
// =============================================================================

// UKTaxRequest is the request to compute UK take-home pay. Period defaults
// to annually and tax_code to 1257L.
type UKTaxRequest struct {
	Amount             float64 `json:"amount"`
	Period             string  `json:"period,omitempty"`
	IsScotlandResident bool    `json:"is_scotland_resident,omitempty"`
	TaxCode            string  `json:"tax_code,omitempty"`
	StudentLoan        bool    `json:"student_loan,omitempty"`
	Bonus              float64 `json:"bonus,omitempty"`
	Overtime           float64 `json:"overtime,omitempty"`
	TaxableBenefits    float64 `json:"taxable_benefits,omitempty"`
	Pension            float64 `json:"pension,omitempty"`
}

// UKTaxInputDTO echoes the resolved input.
type UKTaxInputDTO struct {
	Amount             float64 `json:"amount"`
	Period             string  `json:"period"`
	IsScotlandResident bool    `json:"is_scotland_resident"`
	TaxCode            string  `json:"tax_code"`
	StudentLoan        bool    `json:"student_loan"`
	Bonus              float64 `json:"bonus"`
	Overtime           float64 `json:"overtime"`
	TaxableBenefits    float64 `json:"taxable_benefits"`
	Pension            float64 `json:"pension"`
}

// DeductionsDTO details everything taken off gross pay.
type DeductionsDTO struct {
	PensionDeduction        float64            `json:"pension_deduction"`
	StudentLoan             float64            `json:"student_loan"`
	AllowanceAdjustedIncome float64            `json:"allowance_adjusted_income"`
	IncomeTaxBands          []uktax.BandCharge `json:"income_tax_bands"`
	NationalInsuranceBands  []uktax.BandCharge `json:"national_insurance_bands"`
}

// UKTaxFormattedDTO holds whole-pound display strings for the result.
type UKTaxFormattedDTO struct {
	TakeHome          string `json:"take_home"`
	Gross             string `json:"gross"`
	TaxableIncome     string `json:"taxable_income"`
	Tax               string `json:"tax"`
	NationalInsurance string `json:"national_insurance"`
	PensionDeduction  string `json:"pension_deduction"`
	StudentLoan       string `json:"student_loan"`
}

// UKTaxResponse is the result of a UK take-home calculation.
type UKTaxResponse struct {
	Input      UKTaxInputDTO     `json:"input"`
	Result     uktax.Result      `json:"result"`
	Deductions DeductionsDTO     `json:"deductions"`
	Formatted  UKTaxFormattedDTO `json:"formatted"`
	Messages   []MessageDTO      `json:"messages"`
	Metadata   MetadataDTO       `json:"metadata"`
}

// BatchUKTaxRequest computes several UK take-home scenarios at once.
type BatchUKTaxRequest struct {
	Items []UKTaxRequest `json:"items"`
}

// BatchUKTaxResponse holds results in request order.
type BatchUKTaxResponse struct {
	Results  []UKTaxResponse `json:"results"`
	Metadata MetadataDTO     `json:"metadata"`
}

// =============================================================================
// SHARED
// =============================================================================

// MetadataDTO identifies a calculation.
type MetadataDTO struct {
	CalculationID string `json:"calculation_id"`
	RequestID     string `json:"request_id,omitempty"`
	CalculatedAt  string `json:"calculated_at"`
}

const LevelWarning = "WARNING"

// Message codes.
const (
	CodeTaxCodeIgnored       = "TAX_CODE_NOT_APPLIED"
	CodeScottishRatesIgnored = "SCOTTISH_RATES_NOT_APPLIED"
)

// MessageDTO is an advisory note attached to a result.
type MessageDTO struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ScenarioDTO represents a preset calculation.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"` // "convert" or "uk_tax"
}

// ScenarioRunResponse is a preset plus its computed result.
type ScenarioRunResponse struct {
	Scenario ScenarioDTO      `json:"scenario"`
	Convert  *ConvertResponse `json:"convert,omitempty"`
	UKTax    *UKTaxResponse   `json:"uk_tax,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toConvertInputDTO(in period.Input) ConvertInputDTO {
	s := in.Schedule()
	return ConvertInputDTO{
		Amount:       in.Amount,
		Period:       string(in.Period),
		HoursPerDay:  s.HoursPerDay,
		DaysPerWeek:  s.DaysPerWeek,
		WeeksPerYear: s.WeeksPerYear,
	}
}

func toPeriodAmountsDTO(r period.Result) PeriodAmountsDTO {
	return PeriodAmountsDTO{
		Hourly:   money.FormatUSD(r.Hourly),
		Daily:    money.FormatUSD(r.Daily),
		Weekly:   money.FormatUSD(r.Weekly),
		Monthly:  money.FormatUSD(r.Monthly),
		Annually: money.FormatUSD(r.Annually),
	}
}

func toUKTaxInputDTO(in uktax.Input) UKTaxInputDTO {
	return UKTaxInputDTO{
		Amount:             in.Amount,
		Period:             string(in.Period),
		IsScotlandResident: in.IsScotlandResident,
		TaxCode:            in.TaxCode,
		StudentLoan:        in.StudentLoan,
		Bonus:              in.Bonus,
		Overtime:           in.Overtime,
		TaxableBenefits:    in.TaxableBenefits,
		Pension:            in.Pension,
	}
}

func toDeductionsDTO(b uktax.Breakdown) DeductionsDTO {
	return DeductionsDTO{
		PensionDeduction:        b.PensionDeduction,
		StudentLoan:             b.StudentLoan,
		AllowanceAdjustedIncome: b.AllowanceAdjustedIncome,
		IncomeTaxBands:          b.IncomeTaxBands,
		NationalInsuranceBands:  b.NationalInsuranceBands,
	}
}

func toUKTaxFormattedDTO(b uktax.Breakdown) UKTaxFormattedDTO {
	return UKTaxFormattedDTO{
		TakeHome:          money.FormatGBP(b.TakeHome),
		Gross:             money.FormatGBP(b.Gross),
		TaxableIncome:     money.FormatGBP(b.TaxableIncome),
		Tax:               money.FormatGBP(b.Tax),
		NationalInsurance: money.FormatGBP(b.NationalInsurance),
		PensionDeduction:  money.FormatGBP(b.PensionDeduction),
		StudentLoan:       money.FormatGBP(b.StudentLoan),
	}
}

// limitationMessages flags inputs that are captured but not applied.
func limitationMessages(in uktax.Input) []MessageDTO {
	msgs := []MessageDTO{}
	if in.TaxCode != uktax.DefaultTaxCode {
		msgs = append(msgs, MessageDTO{
			Level:   LevelWarning,
			Code:    CodeTaxCodeIgnored,
			Message: "tax code " + in.TaxCode + " is not applied; the standard personal allowance was used",
		})
	}
	if in.IsScotlandResident {
		msgs = append(msgs, MessageDTO{
			Level:   LevelWarning,
			Code:    CodeScottishRatesIgnored,
			Message: "Scottish income tax bands are not applied; rest-of-UK bands were used",
		})
	}
	return msgs
}
