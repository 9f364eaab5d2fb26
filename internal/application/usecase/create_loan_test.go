package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/application/usecase"
	"github.com/arthasetu/loan-service/internal/domain/event"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockLoanRepository struct {
	saveFunc      func(ctx context.Context, loan model.Loan) error
	findByIDFunc  func(ctx context.Context, id string) (model.Loan, error)
	savedLoans    []model.Loan
	savedPayments []model.LoanPayment
}

func (m *mockLoanRepository) Save(ctx context.Context, loan model.Loan) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	return nil
}

func (m *mockLoanRepository) SaveWithPayment(ctx context.Context, loan model.Loan, payment model.LoanPayment) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, loan)
	}
	m.savedLoans = append(m.savedLoans, loan)
	m.savedPayments = append(m.savedPayments, payment)
	return nil
}

func (m *mockLoanRepository) FindByID(ctx context.Context, id string) (model.Loan, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.Loan{}, model.ErrLoanNotFound
}

func (m *mockLoanRepository) FindByBorrowerID(_ context.Context, _ string) ([]model.Loan, error) {
	return nil, nil
}

func (m *mockLoanRepository) List(_ context.Context) ([]model.Loan, error) {
	return nil, nil
}

type mockPaymentRepository struct {
	findByLoanIDFunc func(ctx context.Context, loanID string) ([]model.LoanPayment, error)
	appended         []model.LoanPayment
}

func (m *mockPaymentRepository) Append(_ context.Context, payment model.LoanPayment) error {
	m.appended = append(m.appended, payment)
	return nil
}

func (m *mockPaymentRepository) FindByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
	if m.findByLoanIDFunc != nil {
		return m.findByLoanIDFunc(ctx, loanID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) FindMissedByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
	payments, err := m.FindByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	var missed []model.LoanPayment
	for _, p := range payments {
		if p.Status.Equal(valueobject.PaymentStatusMissed) {
			missed = append(missed, p)
		}
	}
	return missed, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

// --- Fixtures ---

func activeLoan() model.Loan {
	now := time.Now().UTC()
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return model.ReconstructLoan(
		"loan-001", "borrower-001",
		decimal.NewFromInt(500000), decimal.NewFromInt(9),
		60,
		start, start.AddDate(0, 60, 0),
		decimal.RequireFromString("10379.18"),
		decimal.NewFromInt(500000),
		valueobject.LoanStatusActive,
		1, now, now,
	)
}

// --- Tests ---

func TestCreateLoan_Execute(t *testing.T) {
	t.Run("successfully creates a loan with derived EMI", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.CreateLoanRequest{
			BorrowerID:      "borrower-001",
			PrincipalAmount: decimal.NewFromInt(500000),
			InterestRate:    decimal.NewFromInt(9),
			TenureMonths:    60,
			StartDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "borrower-001", resp.BorrowerID)
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.True(t, decimal.RequireFromString("10379.18").Equal(resp.EMIAmount))
		assert.True(t, decimal.NewFromInt(500000).Equal(resp.OutstandingAmount))
		assert.Equal(t, time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC), resp.EndDate)

		require.Len(t, loanRepo.savedLoans, 1)
		require.NotEmpty(t, publisher.publishedEvents)
		assert.Equal(t, "loan.created", publisher.publishedEvents[0].EventType())
	})

	t.Run("keeps a caller-supplied EMI", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		resp, err := uc.Execute(context.Background(), dto.CreateLoanRequest{
			BorrowerID:      "borrower-001",
			PrincipalAmount: decimal.NewFromInt(500000),
			InterestRate:    decimal.NewFromInt(9),
			TenureMonths:    60,
			StartDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			EMIAmount:       decimal.RequireFromString("10379.31"),
		})

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("10379.31").Equal(resp.EMIAmount))
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		loanRepo := &mockLoanRepository{}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		_, err := uc.Execute(context.Background(), dto.CreateLoanRequest{
			BorrowerID:      "borrower-001",
			PrincipalAmount: decimal.Zero,
			InterestRate:    decimal.NewFromInt(9),
			TenureMonths:    60,
			StartDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		})

		require.ErrorIs(t, err, model.ErrInvalidLoanParameters)
		assert.Empty(t, loanRepo.savedLoans)
		assert.Empty(t, publisher.publishedEvents)
	})

	t.Run("propagates save failure", func(t *testing.T) {
		loanRepo := &mockLoanRepository{
			saveFunc: func(ctx context.Context, loan model.Loan) error {
				return fmt.Errorf("connection refused")
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewCreateLoanUseCase(loanRepo, publisher)

		_, err := uc.Execute(context.Background(), dto.CreateLoanRequest{
			BorrowerID:      "borrower-001",
			PrincipalAmount: decimal.NewFromInt(500000),
			InterestRate:    decimal.NewFromInt(9),
			TenureMonths:    60,
			StartDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "save loan")
		assert.Empty(t, publisher.publishedEvents)
	})
}
