package grpc

import "github.com/arthasetu/loan-service/internal/application/dto"

// Request messages carry money fields as strings so the wire format stays
// exact; the handler parses them into decimals. Response messages reuse the
// application DTOs, which marshal decimals as JSON strings already.

type CreateLoanRequest struct {
	BorrowerID      string `json:"borrower_id"`
	PrincipalAmount string `json:"principal_amount"`
	InterestRate    string `json:"interest_rate"`
	TenureMonths    int    `json:"tenure_months"`
	StartDate       string `json:"start_date"` // RFC 3339
	EMIAmount       string `json:"emi_amount,omitempty"`
}

type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

type ListLoansRequest struct {
	BorrowerID string `json:"borrower_id,omitempty"`
}

type ListLoansResponse struct {
	Loans []dto.LoanResponse `json:"loans"`
}

type SimulatePrepaymentRequest struct {
	LoanID           string `json:"loan_id"`
	PrepaymentAmount string `json:"prepayment_amount"`
}

type ForeclosureRequest struct {
	LoanID                       string `json:"loan_id"`
	ForeclosureChargesPercentage string `json:"foreclosure_charges_percentage"`
}

type RecordPaymentRequest struct {
	LoanID         string `json:"loan_id"`
	PaymentDate    string `json:"payment_date,omitempty"` // RFC 3339
	PaymentAmount  string `json:"payment_amount"`
	PaymentType    string `json:"payment_type"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	TransactionRef string `json:"transaction_reference,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type (
	LoanResponse                   = dto.LoanResponse
	AmortizationScheduleResponse   = dto.AmortizationScheduleResponse
	PrepaymentSimulationResponse   = dto.PrepaymentSimulationResponse
	ForeclosureCalculationResponse = dto.ForeclosureCalculationResponse
	LoanPaymentResponse            = dto.LoanPaymentResponse
	PaymentHistoryResponse         = dto.PaymentHistoryResponse
	MissedPaymentsResponse         = dto.MissedPaymentsResponse
	LoanAnalysisResponse           = dto.LoanAnalysisResponse
)
