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
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

func loanWithEMI(emi string) model.Loan {
	now := time.Now().UTC()
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return model.ReconstructLoan(
		"loan-001", "borrower-001",
		decimal.NewFromInt(500000), decimal.NewFromInt(9),
		60,
		start, start.AddDate(0, 60, 0),
		decimal.RequireFromString(emi),
		decimal.NewFromInt(500000),
		valueobject.LoanStatusActive,
		1, now, now,
	)
}

func TestSimulatePrepayment_Execute(t *testing.T) {
	t.Run("shortens the tenure and reports saved interest", func(t *testing.T) {
		loan := loanWithEMI("10379.31")
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSimulatePrepaymentUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			LoanID:           "loan-001",
			PrepaymentAmount: decimal.NewFromInt(100000),
		})

		require.NoError(t, err)
		assert.False(t, resp.FullyPaidOff)
		assert.Equal(t, 60, resp.OriginalTenureMonths)
		assert.Equal(t, 60, resp.RemainingTenureMonths)
		assert.Equal(t, 46, resp.NewTenureMonths)
		// 14 fewer installments of 10379.31, less the 100000 paid up front.
		assert.True(t, decimal.RequireFromString("45310.34").Equal(resp.SavedInterest), "saved %s", resp.SavedInterest)
	})

	t.Run("reports a full payoff", func(t *testing.T) {
		loan := loanWithEMI("10379.18")
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSimulatePrepaymentUseCase(loanRepo)

		resp, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			LoanID:           "loan-001",
			PrepaymentAmount: decimal.NewFromInt(500000),
		})

		require.NoError(t, err)
		assert.True(t, resp.FullyPaidOff)
		assert.True(t, decimal.Zero.Equal(resp.SavedInterest))
	})

	t.Run("rejects a simulation that cannot amortize", func(t *testing.T) {
		// EMI below the monthly interest accrual of 3750: the balance never
		// shrinks no matter how long the borrower pays.
		loan := loanWithEMI("3000.00")
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSimulatePrepaymentUseCase(loanRepo)

		_, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			LoanID:           "loan-001",
			PrepaymentAmount: decimal.NewFromInt(1000),
		})

		require.ErrorIs(t, err, model.ErrPrepaymentNotAmortizing)
	})

	t.Run("rejects a non-positive prepayment", func(t *testing.T) {
		loan := loanWithEMI("10379.18")
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}

		uc := usecase.NewSimulatePrepaymentUseCase(loanRepo)

		_, err := uc.Execute(context.Background(), dto.SimulatePrepaymentRequest{
			LoanID:           "loan-001",
			PrepaymentAmount: decimal.Zero,
		})

		require.ErrorIs(t, err, model.ErrInvalidPaymentAmount)
	})
}
