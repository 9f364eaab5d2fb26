package usecase

import (
	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/domain/model"
)

func toLoanResponse(loan model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:                loan.ID(),
		BorrowerID:        loan.BorrowerID(),
		PrincipalAmount:   loan.PrincipalAmount(),
		InterestRate:      loan.InterestRate(),
		TenureMonths:      loan.TenureMonths(),
		StartDate:         loan.StartDate(),
		EndDate:           loan.EndDate(),
		EMIAmount:         loan.EMIAmount(),
		OutstandingAmount: loan.OutstandingAmount(),
		Status:            loan.Status().String(),
		CreatedAt:         loan.CreatedAt(),
		UpdatedAt:         loan.UpdatedAt(),
	}
}

func toPaymentResponse(p model.LoanPayment) dto.LoanPaymentResponse {
	return dto.LoanPaymentResponse{
		ID:                      p.ID,
		LoanID:                  p.LoanID,
		PaymentDate:             p.PaymentDate,
		PaymentAmount:           p.Amount,
		PrincipalPaid:           p.PrincipalPaid,
		InterestPaid:            p.InterestPaid,
		OutstandingBalanceAfter: p.OutstandingBalanceAfter,
		PaymentType:             p.Type.String(),
		PaymentStatus:           p.Status.String(),
		PaymentMethod:           p.Method,
		TransactionRef:          p.TransactionRef,
		Notes:                   p.Notes,
	}
}

func toPaymentResponses(payments []model.LoanPayment) []dto.LoanPaymentResponse {
	out := make([]dto.LoanPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}
