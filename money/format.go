/*
Package money renders amounts as localized currency strings.

PURPOSE:
  Display-only formatting for calculation results. Nothing here feeds back
  into the numeric core.

FORMATS:
  USD: en-US grouping, "$" symbol, always 2 decimals   -> $83,200.00
  GBP: en-GB grouping, "£" symbol, no decimals         -> £24,422

ROUNDING:
  Half away from zero (decimal.Round), the same as browser Intl formatting.
  A negative amount that rounds to zero keeps its sign: -0.4 -> "-£0".

SEE ALSO:
  - api/dto.go: Formatted result blocks in API responses
*/
package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency identifies one of the supported display formats.
type Currency string

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
)

type format struct {
	symbol string
	places int32
	tag    language.Tag
}

var formats = map[Currency]format{
	USD: {symbol: "$", places: 2, tag: language.AmericanEnglish},
	GBP: {symbol: "£", places: 0, tag: language.BritishEnglish},
}

// FormatUSD renders amount as US dollars with cents.
func FormatUSD(amount float64) string { return Format(amount, USD) }

// FormatGBP renders amount as whole pounds sterling.
func FormatGBP(amount float64) string { return Format(amount, GBP) }

// Format renders amount in c. An unknown currency falls back to USD.
func Format(amount float64, c Currency) string {
	f, ok := formats[c]
	if !ok {
		f = formats[USD]
	}

	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return f.symbol + "∞"
	case math.IsInf(amount, -1):
		return "-" + f.symbol + "∞"
	}

	sign := ""
	if math.Signbit(amount) && amount != 0 {
		sign = "-"
	}

	rounded := Round(math.Abs(amount), f.places)
	p := message.NewPrinter(f.tag)
	return sign + f.symbol + p.Sprintf("%v", number.Decimal(rounded.InexactFloat64(), number.Scale(int(f.places))))
}

// Round rounds amount to places decimals, half away from zero.
func Round(amount float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(places)
}

// RoundCurrency rounds amount to the precision c is displayed with.
func RoundCurrency(amount float64, c Currency) float64 {
	f, ok := formats[c]
	if !ok {
		f = formats[USD]
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	return Round(amount, f.places).InexactFloat64()
}
