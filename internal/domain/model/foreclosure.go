package model

import (
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/pkg/money"
)

// ForeclosureQuote is the early-payoff amount for a loan: the outstanding
// principal, one month's accrued interest on it, and the lender's foreclosure
// charges.
type ForeclosureQuote struct {
	OutstandingPrincipal decimal.Decimal
	OutstandingInterest  decimal.Decimal
	ForeclosureCharges   decimal.Decimal
	ChargesPercentage    decimal.Decimal
	TotalAmount          decimal.Decimal
}

// QuoteForeclosure computes the payoff amount without mutating anything.
// A non-positive charges percentage is treated as zero charges.
func QuoteForeclosure(outstanding, annualRatePercent, chargesPercentage decimal.Decimal) ForeclosureQuote {
	monthlyRate := money.MonthlyRate(annualRatePercent)
	outstandingInterest := money.Round2(outstanding.Mul(monthlyRate))

	charges := decimal.Zero
	pct := decimal.Zero
	if chargesPercentage.IsPositive() {
		pct = chargesPercentage
		charges = money.Percent(outstanding, chargesPercentage)
	}

	return ForeclosureQuote{
		OutstandingPrincipal: outstanding,
		OutstandingInterest:  outstandingInterest,
		ForeclosureCharges:   charges,
		ChargesPercentage:    pct,
		TotalAmount:          money.Round2(outstanding.Add(outstandingInterest).Add(charges)),
	}
}
