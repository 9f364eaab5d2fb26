package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
)

// ProcessForeclosureUseCase settles a loan early in full: it records the
// foreclosure payment, zeroes the balance and marks the loan FULLY_PAID.
type ProcessForeclosureUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
	locks     *LoanLocks
}

// NewProcessForeclosureUseCase wires dependencies.
func NewProcessForeclosureUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	locks *LoanLocks,
) *ProcessForeclosureUseCase {
	return &ProcessForeclosureUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
		locks:     locks,
	}
}

// Execute forecloses the loan and returns the foreclosure ledger record. The
// updated loan and the record are persisted in one transaction.
func (uc *ProcessForeclosureUseCase) Execute(
	ctx context.Context,
	req dto.ForeclosureRequest,
) (dto.LoanPaymentResponse, error) {
	unlock := uc.locks.Lock(req.LoanID)
	defer unlock()

	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	loan, record, _, err := loan.Foreclose(req.ForeclosureChargesPercentage, now)
	if err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("foreclose loan: %w", err)
	}

	if err := uc.loanRepo.SaveWithPayment(ctx, loan, record); err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPaymentResponse(record), nil
}
