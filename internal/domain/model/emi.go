package model

import (
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/pkg/money"
)

// CalculateEMI computes the equated monthly installment for a loan:
//
//	r   = annualRatePercent / 1200
//	f   = (1 + r)^tenureMonths
//	emi = principal * r * f / (f - 1)
//
// rounded to 2 decimal places, half-up. Degenerate inputs (non-positive
// principal or tenure, negative rate) yield zero rather than an error, and a
// zero-interest loan splits the principal evenly across the tenure with the
// installment rounded up. A
// compounding denominator of zero also yields zero instead of a division
// fault.
//
// For any principal > 0, rate >= 0 and tenure n, emi * n >= principal.
func CalculateEMI(principal, annualRatePercent decimal.Decimal, tenureMonths int) decimal.Decimal {
	if principal.LessThanOrEqual(decimal.Zero) || tenureMonths <= 0 || annualRatePercent.IsNegative() {
		return decimal.Zero
	}

	months := decimal.NewFromInt(int64(tenureMonths))
	if annualRatePercent.IsZero() {
		// Ceiling, not half-up: emi * tenure must never fall short of the
		// principal.
		return principal.Div(months).RoundUp(2)
	}

	monthlyRate := money.MonthlyRate(annualRatePercent)
	factor := money.CompoundFactor(monthlyRate, tenureMonths)

	denominator := factor.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return decimal.Zero
	}

	numerator := principal.Mul(monthlyRate).Mul(factor)
	return numerator.DivRound(denominator, 2)
}

// TotalInterestPayable is the contractual interest over the full tenure:
// emi * tenure - principal, 2dp.
func TotalInterestPayable(principal, emi decimal.Decimal, tenureMonths int) decimal.Decimal {
	totalPayable := emi.Mul(decimal.NewFromInt(int64(tenureMonths)))
	return money.Round2(totalPayable.Sub(principal))
}
