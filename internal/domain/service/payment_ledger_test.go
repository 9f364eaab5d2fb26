package service_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/service"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

var loanStart = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func ledgerLoan(t *testing.T, outstanding string) model.Loan {
	t.Helper()
	now := time.Now().UTC()
	return model.ReconstructLoan(
		"loan-001", "borrower-001",
		decimal.NewFromInt(500_000), decimal.NewFromInt(9),
		60,
		loanStart, loanStart.AddDate(0, 60, 0),
		decimal.RequireFromString("10379.18"),
		decimal.RequireFromString(outstanding),
		valueobject.LoanStatusActive,
		1, now, now,
	)
}

func paidEMI(date time.Time, amount, principal, interest, balanceAfter string) model.LoanPayment {
	return model.LoanPayment{
		ID:                      "payment-" + date.Format("2006-01-02"),
		LoanID:                  "loan-001",
		PaymentDate:             date,
		Amount:                  decimal.RequireFromString(amount),
		PrincipalPaid:           decimal.RequireFromString(principal),
		InterestPaid:            decimal.RequireFromString(interest),
		OutstandingBalanceAfter: decimal.RequireFromString(balanceAfter),
		Type:                    valueobject.PaymentTypeEMI,
		Status:                  valueobject.PaymentStatusPaid,
		CreatedAt:               date,
	}
}

func TestPaymentLedger_Summarize(t *testing.T) {
	ledger := service.NewPaymentLedger()

	t.Run("totals and reconciliation", func(t *testing.T) {
		loan := ledgerLoan(t, "486692.21")
		payments := []model.LoanPayment{
			paidEMI(loanStart.AddDate(0, 1, 0), "10379.18", "6629.18", "3750.00", "493370.82"),
			paidEMI(loanStart.AddDate(0, 2, 0), "10379.18", "6678.61", "3700.57", "486692.21"),
		}

		summary, err := ledger.Summarize(loan, payments)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalPayments)
		assert.True(t, decimal.RequireFromString("20758.36").Equal(summary.TotalPaid))
		assert.True(t, decimal.RequireFromString("13307.79").Equal(summary.TotalPrincipalPaid))
		assert.True(t, decimal.RequireFromString("7450.57").Equal(summary.TotalInterestPaid))
	})

	t.Run("MISSED records count but do not affect reconciliation", func(t *testing.T) {
		loan := ledgerLoan(t, "493370.82")
		missedAt := loanStart.AddDate(0, 2, 0)
		payments := []model.LoanPayment{
			paidEMI(loanStart.AddDate(0, 1, 0), "10379.18", "6629.18", "3750.00", "493370.82"),
			model.NewMissedPayment("loan-001", missedAt, decimal.RequireFromString("493370.82"), missedAt.AddDate(0, 1, 0)),
		}

		summary, err := ledger.Summarize(loan, payments)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.MissedPayments)
		assert.True(t, decimal.RequireFromString("10379.18").Equal(summary.TotalPaid))
	})

	t.Run("detects a ledger out of balance", func(t *testing.T) {
		loan := ledgerLoan(t, "500000")
		payments := []model.LoanPayment{
			paidEMI(loanStart.AddDate(0, 1, 0), "10379.18", "6629.18", "3750.00", "493370.82"),
		}

		_, err := ledger.Summarize(loan, payments)
		require.ErrorIs(t, err, model.ErrLedgerOutOfBalance)
	})

	t.Run("empty ledger reconciles trivially", func(t *testing.T) {
		loan := ledgerLoan(t, "500000")

		summary, err := ledger.Summarize(loan, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, summary.TotalPayments)
		assert.True(t, summary.TotalPaid.IsZero())
	})
}

func TestPaymentLedger_MissedDueDates(t *testing.T) {
	ledger := service.NewPaymentLedger()

	t.Run("FIFO matching with a one period grace window", func(t *testing.T) {
		loan := ledgerLoan(t, "480000")
		// Two installments paid; by June 20 the April and May due dates have
		// closed grace windows with no covering payments.
		payments := []model.LoanPayment{
			paidEMI(time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), "10379.18", "6629.18", "3750.00", "493370.82"),
			paidEMI(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), "10379.18", "6678.61", "3700.57", "486692.21"),
		}
		asOf := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, payments, asOf)

		require.Len(t, missed, 2)
		assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), missed[0])
		assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), missed[1])
	})

	t.Run("a late payment inside the grace window covers its due date", func(t *testing.T) {
		loan := ledgerLoan(t, "493370.82")
		// Due Feb 15, paid Mar 10: inside the window ending Mar 15.
		payments := []model.LoanPayment{
			paidEMI(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "10379.18", "6629.18", "3750.00", "493370.82"),
		}
		asOf := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, payments, asOf)
		assert.Empty(t, missed)
	})

	t.Run("a materialized miss does not cascade onto on-time later payments", func(t *testing.T) {
		loan := ledgerLoan(t, "460000")
		feb := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
		// February is already recorded as MISSED; March through June are each
		// paid exactly on their due dates.
		payments := []model.LoanPayment{
			model.NewMissedPayment("loan-001", feb, decimal.NewFromInt(500_000), feb.AddDate(0, 1, 0)),
			paidEMI(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6629.18", "3750.00", "493370.82"),
			paidEMI(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6678.61", "3700.57", "486692.21"),
			paidEMI(time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6728.43", "3650.19", "479963.78"),
			paidEMI(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6778.60", "3599.73", "473185.18"),
		}
		asOf := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, payments, asOf)
		assert.Empty(t, missed)
	})

	t.Run("a detected miss stops absorbing later on-time payments in the same run", func(t *testing.T) {
		loan := ledgerLoan(t, "460000")
		// February skipped with no MISSED record yet; March through May paid
		// on time. Only the February due date should surface.
		payments := []model.LoanPayment{
			paidEMI(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6629.18", "3750.00", "493370.82"),
			paidEMI(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6678.61", "3700.57", "486692.21"),
			paidEMI(time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), "10379.18", "6728.43", "3650.19", "479963.78"),
		}
		asOf := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, payments, asOf)

		require.Len(t, missed, 1)
		assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), missed[0])
	})

	t.Run("existing MISSED records are not reported again", func(t *testing.T) {
		loan := ledgerLoan(t, "500000")
		feb := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
		payments := []model.LoanPayment{
			model.NewMissedPayment("loan-001", feb, decimal.NewFromInt(500_000), feb.AddDate(0, 1, 0)),
		}
		asOf := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, payments, asOf)

		require.Len(t, missed, 1)
		assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), missed[0])
	})

	t.Run("nothing before the first grace window closes", func(t *testing.T) {
		loan := ledgerLoan(t, "500000")
		asOf := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, nil, asOf)
		assert.Empty(t, missed)
	})

	t.Run("a fully paid loan has no missed dates", func(t *testing.T) {
		now := time.Now().UTC()
		loan := model.ReconstructLoan(
			"loan-001", "borrower-001",
			decimal.NewFromInt(500_000), decimal.NewFromInt(9),
			60,
			loanStart, loanStart.AddDate(0, 60, 0),
			decimal.RequireFromString("10379.18"),
			decimal.Zero,
			valueobject.LoanStatusFullyPaid,
			1, now, now,
		)
		asOf := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

		missed := ledger.MissedDueDates(loan, nil, asOf)
		assert.Empty(t, missed)
	})
}
