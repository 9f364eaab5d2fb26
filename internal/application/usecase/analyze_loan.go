package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/port"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

// AnalyzeLoanUseCase summarizes a loan's total cost and repayment progress:
// lifetime interest, interest-to-principal ratio and how far along the
// borrower is against the contractual schedule.
type AnalyzeLoanUseCase struct {
	loanRepo    port.LoanRepository
	paymentRepo port.LoanPaymentRepository
}

// NewAnalyzeLoanUseCase wires dependencies.
func NewAnalyzeLoanUseCase(
	loanRepo port.LoanRepository,
	paymentRepo port.LoanPaymentRepository,
) *AnalyzeLoanUseCase {
	return &AnalyzeLoanUseCase{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
	}
}

var oneHundred = decimal.NewFromInt(100)

// Execute analyzes the loan against its contractual schedule.
func (uc *AnalyzeLoanUseCase) Execute(
	ctx context.Context,
	req dto.GetLoanRequest,
) (dto.LoanAnalysisResponse, error) {
	loan, err := uc.loanRepo.FindByID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanAnalysisResponse{}, fmt.Errorf("find loan: %w", err)
	}

	payments, err := uc.paymentRepo.FindByLoanID(ctx, req.LoanID)
	if err != nil {
		return dto.LoanAnalysisResponse{}, fmt.Errorf("find payments: %w", err)
	}

	schedule := loan.Schedule()

	completed := 0
	interestPaid := decimal.Zero
	for _, p := range payments {
		if !p.Status.Equal(valueobject.PaymentStatusPaid) {
			continue
		}
		interestPaid = interestPaid.Add(p.InterestPaid)
		if p.Type.Equal(valueobject.PaymentTypeEMI) {
			completed++
		}
	}

	remainingTenure := loan.TenureMonths() - completed
	if remainingTenure < 0 || loan.OutstandingAmount().IsZero() {
		remainingTenure = 0
	}

	remainingInterest := schedule.TotalInterest.Sub(interestPaid)
	if remainingInterest.IsNegative() || loan.OutstandingAmount().IsZero() {
		remainingInterest = decimal.Zero
	}

	principal := loan.PrincipalAmount()
	ratio := decimal.Zero
	effectiveRate := decimal.Zero
	completion := decimal.Zero
	if principal.IsPositive() {
		ratio = schedule.TotalInterest.DivRound(principal, 4)
		effectiveRate = schedule.TotalInterest.Mul(oneHundred).DivRound(principal, 2)
		completion = principal.Sub(loan.OutstandingAmount()).Mul(oneHundred).DivRound(principal, 2)
	}

	return dto.LoanAnalysisResponse{
		LoanID:                   loan.ID(),
		TotalInterestPayable:     schedule.TotalInterest,
		TotalAmountPayable:       schedule.TotalPayable,
		InterestToPrincipalRatio: ratio,
		EffectiveInterestRate:    effectiveRate,
		RemainingTenureMonths:    remainingTenure,
		RemainingInterest:        remainingInterest,
		PaymentsCompleted:        completed,
		TotalPayments:            loan.TenureMonths(),
		CompletionPercentage:     completion,
	}, nil
}
