package usecase

import (
	"context"
	"fmt"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// GetLoanUseCase retrieves loans.
type GetLoanUseCase struct {
	loanRepo port.LoanRepository
}

// NewGetLoanUseCase wires dependencies.
func NewGetLoanUseCase(loanRepo port.LoanRepository) *GetLoanUseCase {
	return &GetLoanUseCase{loanRepo: loanRepo}
}

// Execute retrieves a single loan by ID.
func (uc *GetLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanResponse{}, fmt.Errorf("find loan: %w", err)
	}
	return toLoanResponse(loan), nil
}

// ByBorrower retrieves all loans of one borrower.
func (uc *GetLoanUseCase) ByBorrower(
	ctx context.Context,
	borrowerID string,
) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.FindByBorrowerID(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("find loans by borrower: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l))
	}
	return out, nil
}

// List retrieves all loans.
func (uc *GetLoanUseCase) List(ctx context.Context) ([]dto.LoanResponse, error) {
	loans, err := uc.loanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l))
	}
	return out, nil
}
