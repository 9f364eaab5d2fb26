package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// CreateLoanUseCase opens a new loan for a borrower.
type CreateLoanUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
	}
}

// Execute validates the request, derives the EMI when the caller did not
// supply one, persists the loan and publishes its creation event.
func (uc *CreateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CreateLoanRequest,
) (dto.LoanResponse, error) {
	now := time.Now().UTC()

	loan, err := model.NewLoan(
		req.BorrowerID,
		req.PrincipalAmount, req.InterestRate,
		req.TenureMonths,
		req.StartDate,
		req.EMIAmount,
		now,
	)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("new loan: %w", err)
	}

	if err := uc.loanRepo.Save(ctx, loan); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLoanResponse(loan), nil
}
