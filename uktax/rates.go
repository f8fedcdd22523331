package uktax

// Income tax, 2023/24 (England, Wales and Northern Ireland).
const (
	PersonalAllowance   = 12570.0
	BasicRateThreshold  = 50270.0
	HigherRateThreshold = 125140.0

	BasicRate      = 0.20
	HigherRate     = 0.40
	AdditionalRate = 0.45
)

// Band edges once the personal allowance has been taken off.
const (
	basicBandWidth  = BasicRateThreshold - PersonalAllowance   // 37,700
	higherBandEdge  = HigherRateThreshold - PersonalAllowance  // 112,570
	higherBandWidth = HigherRateThreshold - BasicRateThreshold // 74,870
)

// Class 1 employee National Insurance.
const (
	NIPrimaryThreshold = 12570.0
	NIUpperThreshold   = 50270.0

	NIMainRate   = 0.12
	NIHigherRate = 0.02
)

// Student loan repayments.
const (
	StudentLoanThreshold = 27295.0
	StudentLoanRate      = 0.09
)

const (
	bandBasic      = "basic"
	bandHigher     = "higher"
	bandAdditional = "additional"
	bandNIMain     = "main"
	bandNIUpper    = "upper"
)
