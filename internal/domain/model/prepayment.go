package model

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/pkg/money"
)

// PrepaymentQuote is the outcome of a prepayment simulation. It never mutates
// the loan or its ledger.
type PrepaymentQuote struct {
	SavedInterest         decimal.Decimal
	OriginalTenureMonths  int
	RemainingTenureMonths int
	NewTenureMonths       int
	FullyPaidOff          bool
}

// SimulatePrepayment recomputes the remaining tenure after a partial
// prepayment, holding the EMI constant, and the interest saved versus staying
// on the original schedule.
//
// A prepayment covering the whole outstanding balance short-circuits to a
// fully-paid-off quote. A prepayment leaving a principal whose monthly
// interest accrual meets or exceeds the EMI cannot amortize and is rejected
// with ErrPrepaymentNotAmortizing.
//
// The tenure inversion n = ln(emi / (emi - P*r)) / ln(1+r) is evaluated in
// float64; the ~15 significant digits it carries dwarf the whole-month
// granularity of the result, and Ceil rounds conservatively so the simulated
// tenure is never understated.
func SimulatePrepayment(
	outstanding, emi, annualRatePercent decimal.Decimal,
	originalTenureMonths int,
	prepayment decimal.Decimal,
) (PrepaymentQuote, error) {
	if prepayment.LessThanOrEqual(decimal.Zero) {
		return PrepaymentQuote{}, ErrInvalidPaymentAmount
	}

	newPrincipal := outstanding.Sub(prepayment)
	if newPrincipal.LessThanOrEqual(decimal.Zero) {
		return PrepaymentQuote{
			FullyPaidOff:         true,
			OriginalTenureMonths: originalTenureMonths,
			SavedInterest:        decimal.Zero,
		}, nil
	}

	// Zero-interest loans reduce tenure by simple division and save nothing.
	if annualRatePercent.IsZero() {
		return PrepaymentQuote{
			OriginalTenureMonths:  originalTenureMonths,
			RemainingTenureMonths: ceilDiv(outstanding, emi),
			NewTenureMonths:       ceilDiv(newPrincipal, emi),
			SavedInterest:         decimal.Zero,
		}, nil
	}

	monthlyRate := money.MonthlyRate(annualRatePercent)

	// Debt-trap guard: with P*r >= EMI the installment never outruns accrual.
	if newPrincipal.Mul(monthlyRate).GreaterThanOrEqual(emi) {
		return PrepaymentQuote{}, ErrPrepaymentNotAmortizing
	}
	if outstanding.Mul(monthlyRate).GreaterThanOrEqual(emi) {
		// The un-prepaid baseline itself cannot amortize; there is no
		// remaining-tenure to compare against.
		return PrepaymentQuote{}, ErrPrepaymentNotAmortizing
	}

	newTenureMonths := invertAnnuityTenure(newPrincipal, emi, monthlyRate)
	remainingTenureMonths := invertAnnuityTenure(outstanding, emi, monthlyRate)

	originalRemainingInterest := emi.Mul(decimal.NewFromInt(int64(remainingTenureMonths))).Sub(outstanding)
	newRemainingInterest := emi.Mul(decimal.NewFromInt(int64(newTenureMonths))).Sub(newPrincipal)

	savedInterest := originalRemainingInterest.Sub(newRemainingInterest)
	if savedInterest.IsNegative() {
		savedInterest = decimal.Zero
	}

	return PrepaymentQuote{
		OriginalTenureMonths:  originalTenureMonths,
		RemainingTenureMonths: remainingTenureMonths,
		NewTenureMonths:       newTenureMonths,
		SavedInterest:         money.Round2(savedInterest),
	}, nil
}

// invertAnnuityTenure solves emi = P*r*(1+r)^n / ((1+r)^n - 1) for n:
// n = ceil(ln(emi / (emi - P*r)) / ln(1+r)). Caller guarantees emi > P*r.
func invertAnnuityTenure(principal, emi, monthlyRate decimal.Decimal) int {
	ratio := emi.Div(emi.Sub(principal.Mul(monthlyRate)))
	n := math.Log(ratio.InexactFloat64()) / math.Log(decimal.NewFromInt(1).Add(monthlyRate).InexactFloat64())
	return int(math.Ceil(n))
}

func ceilDiv(amount, by decimal.Decimal) int {
	if by.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(amount.DivRound(by, 8).Ceil().IntPart())
}
