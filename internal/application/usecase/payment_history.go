package usecase

import (
	"context"
	"fmt"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
	"github.com/arthasetu/loan-service/internal/domain/service"
)

// PaymentHistoryUseCase derives the ledger view of a loan: its full payment
// list with running totals, reconciled against the loan's outstanding balance.
type PaymentHistoryUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.LoanPaymentRepository
	ledger      service.PaymentLedger
}

// NewPaymentHistoryUseCase wires dependencies.
func NewPaymentHistoryUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.LoanPaymentRepository,
	ledger service.PaymentLedger,
) *PaymentHistoryUseCase {
	return &PaymentHistoryUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		ledger:      ledger,
	}
}

// Execute returns the ledger summary. A reconciliation failure surfaces as
// an error rather than a silently wrong total.
func (uc *PaymentHistoryUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.PaymentHistoryResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("find payments: %w", err)
	}

	summary, err := uc.ledger.Summarize(loan, payments)
	if err != nil {
		return dto.PaymentHistoryResponse{}, fmt.Errorf("summarize ledger: %w", err)
	}

	return dto.PaymentHistoryResponse{
		LoanID:             loan.ID(),
		TotalPayments:      summary.TotalPayments,
		MissedPayments:     summary.MissedPayments,
		TotalPaid:          summary.TotalPaid,
		TotalPrincipalPaid: summary.TotalPrincipalPaid,
		TotalInterestPaid:  summary.TotalInterestPaid,
		OutstandingBalance: summary.OutstandingBalance,
		Payments:           toPaymentResponses(summary.Payments),
	}, nil
}

// MissedPayments lists the MISSED records already materialized for a loan.
func (uc *PaymentHistoryUseCase) MissedPayments(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.MissedPaymentsResponse, error) {
	missed, err := uc.paymentRepo.FindMissedByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.MissedPaymentsResponse{}, fmt.Errorf("find missed payments: %w", err)
	}

	return dto.MissedPaymentsResponse{
		LoanID:   req.LoanID,
		Detected: len(missed),
		Payments: toPaymentResponses(missed),
	}, nil
}
