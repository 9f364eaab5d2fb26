// Package money holds the fixed-point arithmetic discipline used by the loan
// engine: amounts exposed to callers are rounded to 2 decimal places
// (round-half-up), while intermediate ratios keep the library's full division
// precision. Amounts travel as bare decimals; the engine is single-currency
// and carries no currency tags.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	one           = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
	twelveHundred = decimal.NewFromInt(1200)
)

// Round2 rounds a monetary amount to 2 decimal places. shopspring's Round is
// half-away-from-zero, which coincides with HALF_UP for the non-negative
// amounts the engine works with.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MonthlyRate converts an annual percentage rate into a monthly rate fraction
// (rate / 1200). The division keeps the library's full working precision,
// well above the 10 significant digits the ratio computations require.
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(twelveHundred)
}

// CompoundFactor computes (1 + monthlyRate)^periods by repeated exact
// multiplication, avoiding binary floating point in the EMI path.
func CompoundFactor(monthlyRate decimal.Decimal, periods int) decimal.Decimal {
	onePlus := one.Add(monthlyRate)
	factor := one
	for i := 0; i < periods; i++ {
		factor = factor.Mul(onePlus)
	}
	return factor
}

// Percent returns base * pct / 100 rounded to 2 decimal places.
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).DivRound(hundred, 2)
}
