package uktax

import "math"

// Calculate returns the take-home breakdown for in, in in.Period.
func Calculate(in Input) Result {
	return CalculateDetailed(in).Result
}

// CalculateDetailed is Calculate plus the intermediate deductions and the
// per-band charges.
func CalculateDetailed(in Input) Breakdown {
	annual := in.Amount
	if in.Period == Monthly {
		annual = in.Amount * 12
	}
	totalGross := annual + in.Bonus + in.Overtime

	pension := totalGross * (in.Pension / 100)

	// The bands are applied to income net of the personal allowance.
	adjusted := math.Max(0, totalGross-pension+in.TaxableBenefits-PersonalAllowance)
	taxBands := incomeTaxBands(adjusted)
	tax := sumCharges(taxBands)

	niBands := nationalInsuranceBands(totalGross - pension)
	ni := sumCharges(niBands)

	loan := studentLoanRepayment(in.StudentLoan, totalGross)

	takeHome := totalGross - tax - ni - pension - loan

	m := in.Period.Multiplier()
	return Breakdown{
		Result: Result{
			TakeHome:          takeHome * m,
			Gross:             totalGross * m,
			TaxableIncome:     (totalGross - pension + in.TaxableBenefits) * m,
			Tax:               tax * m,
			NationalInsurance: ni * m,
		},
		PensionDeduction:        pension * m,
		StudentLoan:             loan * m,
		AllowanceAdjustedIncome: adjusted * m,
		IncomeTaxBands:          scaleBands(taxBands, m),
		NationalInsuranceBands:  scaleBands(niBands, m),
	}
}

// incomeTaxBands splits allowance-adjusted income across the basic, higher
// and additional bands. Bands the income does not reach are omitted, and a
// NaN income charges nothing.
func incomeTaxBands(taxable float64) []BandCharge {
	if !(taxable > 0) {
		return nil
	}

	if taxable <= basicBandWidth {
		return []BandCharge{
			{Name: bandBasic, Rate: BasicRate, Taxed: taxable, Charge: taxable * BasicRate},
		}
	}

	basic := BandCharge{Name: bandBasic, Rate: BasicRate, Taxed: basicBandWidth, Charge: basicBandWidth * BasicRate}
	if taxable <= higherBandEdge {
		excess := taxable - basicBandWidth
		return []BandCharge{
			basic,
			{Name: bandHigher, Rate: HigherRate, Taxed: excess, Charge: excess * HigherRate},
		}
	}

	excess := taxable - higherBandEdge
	return []BandCharge{
		basic,
		{Name: bandHigher, Rate: HigherRate, Taxed: higherBandWidth, Charge: higherBandWidth * HigherRate},
		{Name: bandAdditional, Rate: AdditionalRate, Taxed: excess, Charge: excess * AdditionalRate},
	}
}

// nationalInsuranceBands charges NI on income after pension. Benefits and
// the personal allowance play no part.
func nationalInsuranceBands(niable float64) []BandCharge {
	if !(niable > NIPrimaryThreshold) {
		return nil
	}

	if niable <= NIUpperThreshold {
		excess := niable - NIPrimaryThreshold
		return []BandCharge{
			{Name: bandNIMain, Rate: NIMainRate, Taxed: excess, Charge: excess * NIMainRate},
		}
	}

	const mainWidth = NIUpperThreshold - NIPrimaryThreshold
	excess := niable - NIUpperThreshold
	return []BandCharge{
		{Name: bandNIMain, Rate: NIMainRate, Taxed: mainWidth, Charge: mainWidth * NIMainRate},
		{Name: bandNIUpper, Rate: NIHigherRate, Taxed: excess, Charge: excess * NIHigherRate},
	}
}

// studentLoanRepayment is charged on gross pay, before pension.
func studentLoanRepayment(enrolled bool, totalGross float64) float64 {
	if enrolled && totalGross > StudentLoanThreshold {
		return (totalGross - StudentLoanThreshold) * StudentLoanRate
	}
	return 0
}

func sumCharges(bands []BandCharge) float64 {
	var total float64
	for _, b := range bands {
		total += b.Charge
	}
	return total
}

func scaleBands(bands []BandCharge, m float64) []BandCharge {
	if len(bands) == 0 {
		return []BandCharge{}
	}
	out := make([]BandCharge, len(bands))
	for i, b := range bands {
		out[i] = BandCharge{Name: b.Name, Rate: b.Rate, Taxed: b.Taxed * m, Charge: b.Charge * m}
	}
	return out
}
