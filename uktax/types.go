/*
Package uktax computes UK take-home pay from gross salary inputs.

PURPOSE:
  Gross-to-net breakdown for a single tax year (2023/24 thresholds): income
  tax across three bands, Class 1 employee National Insurance, plan 1 style
  student loan repayments and a percentage pension deduction.

ANNUALIZED MATH:
  Every figure is computed on annual amounts. A monthly input is multiplied
  by 12 first and the results are divided by 12 at the end, so a monthly and
  an annual input describing the same salary agree on gross, tax, NI and
  take-home.

KNOWN LIMITATIONS:
  - TaxCode is captured but not parsed. The personal allowance is always
    the standard 12,570.
  - IsScotlandResident is captured but Scottish bands are not applied.
  - Result.TaxableIncome is reported before the personal allowance is
    subtracted, unlike the figure the tax bands are applied to
    (Breakdown.AllowanceAdjustedIncome). Kept for output compatibility.

NO VALIDATION:
  Any numeric input produces a result. Negative values flow through the
  arithmetic; only the allowance-adjusted income is clamped at zero.

SEE ALSO:
  - rates.go: Thresholds and rates
  - calculate.go: The calculation
*/
package uktax

// PayPeriod is the period the input amount and the results are expressed in.
type PayPeriod string

const (
	Monthly  PayPeriod = "monthly"
	Annually PayPeriod = "annually"
)

// Valid reports whether p is monthly or annually.
func (p PayPeriod) Valid() bool {
	return p == Monthly || p == Annually
}

// Multiplier converts an annual figure into p.
func (p PayPeriod) Multiplier() float64 {
	if p == Monthly {
		return 1.0 / 12
	}
	return 1
}

// DefaultTaxCode is the standard personal allowance code.
const DefaultTaxCode = "1257L"

// Input is a salary plus the optional extras that affect take-home pay.
// Bonus, Overtime and TaxableBenefits are annual amounts; Pension is a
// percentage of gross (0-100).
type Input struct {
	Amount             float64
	Period             PayPeriod
	IsScotlandResident bool
	TaxCode            string
	StudentLoan        bool
	Bonus              float64
	Overtime           float64
	TaxableBenefits    float64
	Pension            float64
}

// Result is the headline breakdown, expressed in the input's period.
type Result struct {
	TakeHome          float64 `json:"take_home"`
	Gross             float64 `json:"gross"`
	TaxableIncome     float64 `json:"taxable_income"`
	Tax               float64 `json:"tax"`
	NationalInsurance float64 `json:"national_insurance"`
}

// BandCharge is the amount charged within one band.
type BandCharge struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Taxed  float64 `json:"taxed"`
	Charge float64 `json:"charge"`
}

// Breakdown is Result plus every intermediate deduction, also expressed in
// the input's period.
type Breakdown struct {
	Result

	PensionDeduction        float64      `json:"pension_deduction"`
	StudentLoan             float64      `json:"student_loan"`
	AllowanceAdjustedIncome float64      `json:"allowance_adjusted_income"`
	IncomeTaxBands          []BandCharge `json:"income_tax_bands"`
	NationalInsuranceBands  []BandCharge `json:"national_insurance_bands"`
}
