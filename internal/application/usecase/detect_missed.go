package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/event"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/port"
	"github.com/arthasetu/loan-service/internal/domain/service"
)

// DetectMissedPaymentsUseCase scans a loan's schedule for due dates whose
// grace window has closed without a covering installment and materializes
// them as MISSED ledger records. Running it twice is a no-op: due dates that
// already carry a MISSED record are skipped.
type DetectMissedPaymentsUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.LoanPaymentRepository
	ledger      service.PaymentLedger
	publisher   port.EventPublisher
	locks       *LoanLocks
}

// NewDetectMissedPaymentsUseCase wires dependencies.
func NewDetectMissedPaymentsUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.LoanPaymentRepository,
	ledger service.PaymentLedger,
	publisher port.EventPublisher,
	locks *LoanLocks,
) *DetectMissedPaymentsUseCase {
	return &DetectMissedPaymentsUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
		publisher:   publisher,
		locks:       locks,
	}
}

// Execute detects and records missed payments as of now. MISSED records carry
// the balance snapshot but never change it.
func (uc *DetectMissedPaymentsUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.MissedPaymentsResponse, error) {
	unlock := uc.locks.Lock(req.LoanID)
	defer unlock()

	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.MissedPaymentsResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.MissedPaymentsResponse{}, fmt.Errorf("find payments: %w", err)
	}

	var records []model.LoanPayment
	for _, due := range uc.ledger.MissedDueDates(loan, payments, now) {
		record := model.NewMissedPayment(loan.ID(), due, loan.OutstandingAmount(), now)
		if err := uc.paymentRepo.Append(ctx, record); err != nil {
			return dto.MissedPaymentsResponse{}, fmt.Errorf("append missed record: %w", err)
		}
		records = append(records, record)

		missedEvent := event.NewPaymentMissed(loan.ID(), due, loan.OutstandingAmount())
		if err := uc.publisher.Publish(ctx, missedEvent); err != nil {
			return dto.MissedPaymentsResponse{}, fmt.Errorf("publish events: %w", err)
		}
	}

	return dto.MissedPaymentsResponse{
		LoanID:   loan.ID(),
		Detected: len(records),
		Payments: toPaymentResponses(records),
	}, nil
}
