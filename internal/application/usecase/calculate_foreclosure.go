package usecase

import (
	"context"
	"fmt"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// CalculateForeclosureUseCase quotes the amount needed to close a loan early:
// outstanding principal, one period of accrued interest and the lender's
// foreclosure charges. The loan is not modified.
type CalculateForeclosureUseCase struct {
	loanRepo port.LoanRepository
}

// NewCalculateForeclosureUseCase wires dependencies.
func NewCalculateForeclosureUseCase(loanRepo port.LoanRepository) *CalculateForeclosureUseCase {
	return &CalculateForeclosureUseCase{loanRepo: loanRepo}
}

// Execute quotes the foreclosure amount at the loan's current balance.
func (uc *CalculateForeclosureUseCase) Execute(
	ctx context.Context,
	req dto.ForeclosureRequest,
) (dto.ForeclosureCalculationResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.ForeclosureCalculationResponse{}, fmt.Errorf("find loan: %w", err)
	}

	quote := loan.QuoteForeclosure(req.ForeclosureChargesPercentage)

	return dto.ForeclosureCalculationResponse{
		LoanID:                       loan.ID(),
		OutstandingPrincipal:         quote.OutstandingPrincipal,
		OutstandingInterest:          quote.OutstandingInterest,
		ForeclosureCharges:           quote.ForeclosureCharges,
		ForeclosureChargesPercentage: quote.ChargesPercentage,
		TotalForeclosureAmount:       quote.TotalAmount,
		Message:                      "quote valid against the current outstanding balance",
	}, nil
}
