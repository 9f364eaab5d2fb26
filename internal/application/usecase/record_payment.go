package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/port"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

// RecordPaymentUseCase applies an EMI or prepayment to a loan and appends the
// resulting record to the payment ledger.
type RecordPaymentUseCase struct {
	loanRepo  port.LoanRepository
	publisher port.EventPublisher
	locks     *LoanLocks
}

// NewRecordPaymentUseCase wires dependencies.
func NewRecordPaymentUseCase(
	loanRepo port.LoanRepository,
	publisher port.EventPublisher,
	locks *LoanLocks,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		loanRepo:  loanRepo,
		publisher: publisher,
		locks:     locks,
	}
}

// Execute records a payment. Loan update and ledger append are one
// transaction, so the balance and the ledger cannot diverge.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.LoanPaymentResponse, error) {
	paymentType, err := valueobject.NewPaymentType(req.PaymentType)
	if err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("payment type: %w", err)
	}
	if !paymentType.Equal(valueobject.PaymentTypeEMI) && !paymentType.Equal(valueobject.PaymentTypePrepayment) {
		return dto.LoanPaymentResponse{}, fmt.Errorf("payment type %q: %w", req.PaymentType, model.ErrInvalidPaymentAmount)
	}

	unlock := uc.locks.Lock(req.LoanID)
	defer unlock()

	now := time.Now().UTC()

	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("find loan: %w", err)
	}

	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}

	loan, record, err := loan.RecordPayment(model.PaymentInput{
		Type:           paymentType,
		Amount:         req.PaymentAmount,
		Date:           paymentDate,
		Method:         req.PaymentMethod,
		TransactionRef: req.TransactionRef,
		Notes:          req.Notes,
	}, now)
	if err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("record payment: %w", err)
	}

	if err := uc.loanRepo.SaveWithPayment(ctx, loan, record); err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("save loan: %w", err)
	}

	if err := uc.publisher.Publish(ctx, loan.DomainEvents()...); err != nil {
		return dto.LoanPaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPaymentResponse(record), nil
}
