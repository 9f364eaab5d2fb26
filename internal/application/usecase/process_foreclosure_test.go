package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/application/usecase"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

func TestCalculateForeclosure_Execute(t *testing.T) {
	loan := activeLoan()
	loanRepo := &mockLoanRepository{
		findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
			return loan, nil
		},
	}

	uc := usecase.NewCalculateForeclosureUseCase(loanRepo)

	resp, err := uc.Execute(context.Background(), dto.ForeclosureRequest{
		LoanID:                       "loan-001",
		ForeclosureChargesPercentage: decimal.NewFromInt(2),
	})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500000).Equal(resp.OutstandingPrincipal))
	// One month of 9% annual interest on 500000, plus 2% charges.
	assert.True(t, decimal.RequireFromString("3750.00").Equal(resp.OutstandingInterest))
	assert.True(t, decimal.RequireFromString("10000.00").Equal(resp.ForeclosureCharges))
	assert.True(t, decimal.RequireFromString("513750.00").Equal(resp.TotalForeclosureAmount))

	// Quote only; nothing is persisted.
	assert.Empty(t, loanRepo.savedLoans)
}

func TestProcessForeclosure_Execute(t *testing.T) {
	t.Run("settles the loan and returns the foreclosure payment record", func(t *testing.T) {
		loan := activeLoan()
		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return loan, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewProcessForeclosureUseCase(loanRepo, publisher, usecase.NewLoanLocks())

		resp, err := uc.Execute(context.Background(), dto.ForeclosureRequest{
			LoanID:                       "loan-001",
			ForeclosureChargesPercentage: decimal.NewFromInt(2),
		})

		require.NoError(t, err)
		assert.Equal(t, "loan-001", resp.LoanID)
		assert.Equal(t, valueobject.PaymentTypeForeclosure.String(), resp.PaymentType)
		assert.Equal(t, valueobject.PaymentStatusPaid.String(), resp.PaymentStatus)
		assert.True(t, decimal.RequireFromString("513750.00").Equal(resp.PaymentAmount))
		assert.True(t, decimal.NewFromInt(500000).Equal(resp.PrincipalPaid))
		// Accrued interest plus charges: 3750 + 10000.
		assert.True(t, decimal.RequireFromString("13750.00").Equal(resp.InterestPaid))
		assert.True(t, resp.OutstandingBalanceAfter.IsZero())

		require.Len(t, loanRepo.savedLoans, 1)
		saved := loanRepo.savedLoans[0]
		assert.True(t, saved.Status().Equal(valueobject.LoanStatusFullyPaid))
		assert.True(t, saved.OutstandingAmount().IsZero())

		require.Len(t, loanRepo.savedPayments, 1)
		record := loanRepo.savedPayments[0]
		assert.True(t, record.Type.Equal(valueobject.PaymentTypeForeclosure))
		assert.True(t, decimal.RequireFromString("513750.00").Equal(record.Amount))
		assert.True(t, record.OutstandingBalanceAfter.IsZero())

		var types []string
		for _, e := range publisher.publishedEvents {
			types = append(types, e.EventType())
		}
		assert.Contains(t, types, "loan.foreclosed")
		assert.Contains(t, types, "loan.paid_off")
	})

	t.Run("rejects foreclosing a fully paid loan", func(t *testing.T) {
		loan := activeLoan()
		settled, _, _, err := loan.Foreclose(decimal.Zero, loan.UpdatedAt())
		require.NoError(t, err)

		loanRepo := &mockLoanRepository{
			findByIDFunc: func(ctx context.Context, id string) (model.Loan, error) {
				return settled, nil
			},
		}

		uc := usecase.NewProcessForeclosureUseCase(loanRepo, &mockEventPublisher{}, usecase.NewLoanLocks())

		_, err = uc.Execute(context.Background(), dto.ForeclosureRequest{LoanID: "loan-001"})
		require.ErrorIs(t, err, model.ErrLoanFullyPaid)
	})
}
