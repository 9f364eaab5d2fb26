package usecase

import (
	"context"
	"fmt"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// GenerateScheduleUseCase builds the contractual amortization schedule of a
// loan: the full month-by-month split of each EMI into interest and principal
// down to a zero balance.
type GenerateScheduleUseCase struct {
	loanRepo port.LoanRepository
}

// NewGenerateScheduleUseCase wires dependencies.
func NewGenerateScheduleUseCase(loanRepo port.LoanRepository) *GenerateScheduleUseCase {
	return &GenerateScheduleUseCase{loanRepo: loanRepo}
}

// Execute generates the schedule from the loan's original terms. The schedule
// is deterministic and recomputed on every call, never stored.
func (uc *GenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.AmortizationScheduleResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.AmortizationScheduleResponse{}, fmt.Errorf("find loan: %w", err)
	}

	schedule := loan.Schedule()

	entries := make([]dto.AmortizationEntryResponse, 0, len(schedule.Entries))
	for _, e := range schedule.Entries {
		entries = append(entries, dto.AmortizationEntryResponse{
			PaymentNumber:      e.PaymentNumber,
			PaymentDate:        e.PaymentDate,
			EMIAmount:          e.EMIAmount,
			InterestComponent:  e.InterestComponent,
			PrincipalComponent: e.PrincipalComponent,
			OutstandingBalance: e.OutstandingBalance,
		})
	}

	return dto.AmortizationScheduleResponse{
		LoanID:         loan.ID(),
		TenureMonths:   schedule.TenureMonths,
		TotalPrincipal: schedule.TotalPrincipal,
		TotalInterest:  schedule.TotalInterest,
		TotalPayable:   schedule.TotalPayable,
		Schedule:       entries,
	}, nil
}
