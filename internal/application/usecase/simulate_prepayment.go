package usecase

import (
	"context"
	"fmt"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// SimulatePrepaymentUseCase answers the what-if of applying a lump-sum
// prepayment to a loan: the shortened tenure and the interest saved. It is a
// pure read; the loan is never modified.
type SimulatePrepaymentUseCase struct {
	loanRepo port.LoanRepository
}

// NewSimulatePrepaymentUseCase wires dependencies.
func NewSimulatePrepaymentUseCase(loanRepo port.LoanRepository) *SimulatePrepaymentUseCase {
	return &SimulatePrepaymentUseCase{loanRepo: loanRepo}
}

// Execute runs the simulation against the loan's current outstanding balance.
func (uc *SimulatePrepaymentUseCase) Execute(
	ctx context.Context,
	req dto.SimulatePrepaymentRequest,
) (dto.PrepaymentSimulationResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PrepaymentSimulationResponse{}, fmt.Errorf("find loan: %w", err)
	}

	quote, err := loan.SimulatePrepayment(req.PrepaymentAmount)
	if err != nil {
		return dto.PrepaymentSimulationResponse{}, fmt.Errorf("simulate prepayment: %w", err)
	}

	resp := dto.PrepaymentSimulationResponse{
		LoanID:                loan.ID(),
		FullyPaidOff:          quote.FullyPaidOff,
		OriginalTenureMonths:  quote.OriginalTenureMonths,
		RemainingTenureMonths: quote.RemainingTenureMonths,
		NewTenureMonths:       quote.NewTenureMonths,
		SavedInterest:         quote.SavedInterest,
	}
	if quote.FullyPaidOff {
		resp.Message = "prepayment clears the outstanding balance in full"
	} else {
		resp.Message = fmt.Sprintf("tenure reduced from %d to %d months", quote.RemainingTenureMonths, quote.NewTenureMonths)
	}

	return resp, nil
}
