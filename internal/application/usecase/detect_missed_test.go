package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/application/usecase"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/service"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

func reconstructedLoan(start time.Time, outstanding decimal.Decimal, status valueobject.LoanStatus) model.Loan {
	now := time.Now().UTC()
	return model.ReconstructLoan(
		"loan-001", "borrower-001",
		decimal.NewFromInt(500000), decimal.NewFromInt(9),
		60,
		start, start.AddDate(0, 60, 0),
		decimal.RequireFromString("10379.18"),
		outstanding,
		status,
		1, now, now,
	)
}

func TestDetectMissedPayments_Execute(t *testing.T) {
	t.Run("materializes MISSED records for overdue installments", func(t *testing.T) {
		// Started a year ago with a single paid installment, so every due
		// date from the second onward has an expired grace window.
		start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		loan := reconstructedLoan(start, decimal.RequireFromString("493370.82"), valueobject.LoanStatusActive)
		payments := []model.LoanPayment{
			paidEMIRecord("loan-001", start.AddDate(0, 1, 0), "10379.18", "6629.18", "3750.00", "493370.82"),
		}
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		paymentRepo := &mockPaymentRepository{
			findByLoanIDFunc: func(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
				return payments, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDetectMissedPaymentsUseCase(loanRepo, paymentRepo, service.NewPaymentLedger(), publisher, usecase.NewLoanLocks())

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Greater(t, resp.Detected, 0)
		assert.Len(t, paymentRepo.appended, resp.Detected)
		assert.Len(t, publisher.publishedEvents, resp.Detected)

		for _, record := range paymentRepo.appended {
			assert.True(t, record.Type.Equal(valueobject.PaymentTypeMissed))
			assert.True(t, record.Status.Equal(valueobject.PaymentStatusMissed))
			assert.True(t, record.Amount.IsZero())
			// The balance snapshot is carried but never moved.
			assert.True(t, decimal.RequireFromString("493370.82").Equal(record.OutstandingBalanceAfter))
		}
		// The paid first installment is covered; detection starts at the second.
		assert.Equal(t, start.AddDate(0, 2, 0), paymentRepo.appended[0].PaymentDate)
	})

	t.Run("is idempotent across runs", func(t *testing.T) {
		start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		loan := reconstructedLoan(start, decimal.NewFromInt(500000), valueobject.LoanStatusActive)

		var stored []model.LoanPayment
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		paymentRepo := &mockPaymentRepository{
			findByLoanIDFunc: func(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
				return stored, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDetectMissedPaymentsUseCase(loanRepo, paymentRepo, service.NewPaymentLedger(), publisher, usecase.NewLoanLocks())

		first, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "loan-001"})
		require.NoError(t, err)
		require.Greater(t, first.Detected, 0)

		stored = append(stored, paymentRepo.appended...)

		second, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "loan-001"})
		require.NoError(t, err)
		assert.Equal(t, 0, second.Detected)
	})

	t.Run("detects nothing before the first grace window closes", func(t *testing.T) {
		start := time.Now().UTC().AddDate(0, 1, 0)
		loan := reconstructedLoan(start, decimal.NewFromInt(500000), valueobject.LoanStatusActive)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		paymentRepo := &mockPaymentRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDetectMissedPaymentsUseCase(loanRepo, paymentRepo, service.NewPaymentLedger(), publisher, usecase.NewLoanLocks())

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Detected)
		assert.Empty(t, paymentRepo.appended)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("skips a fully paid loan", func(t *testing.T) {
		start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		loan := reconstructedLoan(start, decimal.Zero, valueobject.LoanStatusFullyPaid)
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		paymentRepo := &mockPaymentRepository{}

		uc := usecase.NewDetectMissedPaymentsUseCase(loanRepo, paymentRepo, service.NewPaymentLedger(), &mockEventPublisher{}, usecase.NewLoanLocks())

		resp, err := uc.Execute(context.Background(), dto.GetLoanRequest{LoanID: "loan-001"})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Detected)
	})
}
