package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/pkg/money"
)

// AmortizationEntry is an immutable value object representing one EMI period.
type AmortizationEntry struct {
	PaymentDate        time.Time
	EMIAmount          decimal.Decimal
	InterestComponent  decimal.Decimal
	PrincipalComponent decimal.Decimal
	OutstandingBalance decimal.Decimal
	PaymentNumber      int
}

// AmortizationSchedule is the full month-by-month breakdown of a loan.
type AmortizationSchedule struct {
	Entries        []AmortizationEntry
	TotalPrincipal decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPayable   decimal.Decimal
	TenureMonths   int
}

// BuildAmortizationSchedule produces the principal/interest breakdown for the
// full tenure. Each period accrues interest on the running balance at the
// monthly rate (2dp, half-up) and retires the remainder of the EMI as
// principal. The final period retires the remaining balance exactly, so
// rounding drift lands in the last installment and the terminal balance is
// zero to the cent.
func BuildAmortizationSchedule(
	principal, annualRatePercent decimal.Decimal,
	tenureMonths int,
	emi decimal.Decimal,
	startDate time.Time,
) AmortizationSchedule {
	if tenureMonths <= 0 || principal.LessThanOrEqual(decimal.Zero) {
		return AmortizationSchedule{}
	}

	monthlyRate := money.MonthlyRate(annualRatePercent)
	balance := principal
	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero

	entries := make([]AmortizationEntry, 0, tenureMonths)

	for period := 1; period <= tenureMonths; period++ {
		interest := money.Round2(balance.Mul(monthlyRate))
		principalPart := emi.Sub(interest)
		installment := emi

		// Final period, or a principal component overshooting the balance:
		// retire the balance exactly.
		if period == tenureMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
			interest = money.Round2(balance.Mul(monthlyRate))
			installment = principalPart.Add(interest)
		}

		balance = balance.Sub(principalPart)
		totalPrincipal = totalPrincipal.Add(principalPart)
		totalInterest = totalInterest.Add(interest)

		entries = append(entries, AmortizationEntry{
			PaymentNumber:      period,
			PaymentDate:        startDate.AddDate(0, period, 0),
			EMIAmount:          installment,
			InterestComponent:  interest,
			PrincipalComponent: principalPart,
			OutstandingBalance: balance,
		})
	}

	return AmortizationSchedule{
		Entries:        entries,
		TotalPrincipal: totalPrincipal,
		TotalInterest:  money.Round2(totalInterest),
		TotalPayable:   money.Round2(totalPrincipal.Add(totalInterest)),
		TenureMonths:   tenureMonths,
	}
}
