// Package service holds stateless domain services operating across the Loan
// aggregate and its payment records.
package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

// PaymentLedger derives ledger views from the append-only payment log. It is
// stateless: totals are recomputed from the stored records on every read and
// never cached.
type PaymentLedger struct{}

// NewPaymentLedger creates the ledger service.
func NewPaymentLedger() PaymentLedger {
	return PaymentLedger{}
}

// Summary is the aggregated view of a loan's payment history.
type Summary struct {
	TotalPaid          decimal.Decimal
	TotalPrincipalPaid decimal.Decimal
	TotalInterestPaid  decimal.Decimal
	OutstandingBalance decimal.Decimal
	Payments           []model.LoanPayment
	TotalPayments      int
	MissedPayments     int
}

// Summarize recomputes payment totals from the record list and verifies that
// the newest balance-affecting record reconciles with the loan's outstanding
// amount. Records are expected in ledger order (payment date, then creation).
func (PaymentLedger) Summarize(loan model.Loan, payments []model.LoanPayment) (Summary, error) {
	s := Summary{
		TotalPaid:          decimal.Zero,
		TotalPrincipalPaid: decimal.Zero,
		TotalInterestPaid:  decimal.Zero,
		OutstandingBalance: loan.OutstandingAmount(),
		Payments:           payments,
		TotalPayments:      len(payments),
	}

	var lastPaid *model.LoanPayment
	for i := range payments {
		p := payments[i]
		switch {
		case p.Status.Equal(valueobject.PaymentStatusMissed):
			s.MissedPayments++
		case p.Status.Equal(valueobject.PaymentStatusPaid):
			s.TotalPaid = s.TotalPaid.Add(p.Amount)
			s.TotalPrincipalPaid = s.TotalPrincipalPaid.Add(p.PrincipalPaid)
			s.TotalInterestPaid = s.TotalInterestPaid.Add(p.InterestPaid)
			if lastPaid == nil || !p.CreatedAt.Before(lastPaid.CreatedAt) {
				lastPaid = &payments[i]
			}
		}
	}

	// MISSED records never move the balance, so reconciliation is against the
	// most recently created PAID record.
	if lastPaid != nil && !lastPaid.OutstandingBalanceAfter.Equal(loan.OutstandingAmount()) {
		return Summary{}, model.ErrLedgerOutOfBalance
	}

	return s, nil
}

// MissedDueDates returns the scheduled due dates that must be materialized as
// MISSED records as of the given time.
//
// Installments are matched to due dates first-in-first-out: due date n is
// covered when enough PAID EMI payments have arrived before the following due
// date (its grace window) to satisfy every non-missed due up to n. Due dates
// already carrying a MISSED record are skipped and stop consuming payments, so
// a single missed installment does not cascade onto on-time later ones.
// Everything is skipped once the loan is fully paid.
func (PaymentLedger) MissedDueDates(loan model.Loan, payments []model.LoanPayment, asOf time.Time) []time.Time {
	if loan.OutstandingAmount().IsZero() {
		return nil
	}

	alreadyMissed := make(map[time.Time]bool)
	var paidDates []time.Time
	for _, p := range payments {
		switch {
		case p.Type.Equal(valueobject.PaymentTypeMissed):
			alreadyMissed[p.PaymentDate] = true
		case p.Type.Equal(valueobject.PaymentTypeEMI) && p.Status.Equal(valueobject.PaymentStatusPaid):
			paidDates = append(paidDates, p.PaymentDate)
		}
	}

	var missed []time.Time
	missedSoFar := 0
	for period := 1; period <= loan.TenureMonths(); period++ {
		due := loan.DueDate(period)
		graceEnd := loan.DueDate(period + 1)
		if graceEnd.After(asOf) {
			break
		}
		if alreadyMissed[due] {
			missedSoFar++
			continue
		}

		paidInTime := 0
		for _, d := range paidDates {
			if d.Before(graceEnd) {
				paidInTime++
			}
		}
		// Missed dues up to this point no longer expect a payment, so they
		// must not absorb installments paid for later periods.
		if paidInTime < period-missedSoFar {
			missed = append(missed, due)
			missedSoFar++
		}
	}

	return missed
}
