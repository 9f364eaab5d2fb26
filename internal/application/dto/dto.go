package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateLoanRequest carries the data needed to open a new loan. EMIAmount is
// optional; when zero it is derived from the principal, rate and tenure.
type CreateLoanRequest struct {
	BorrowerID      string          `json:"borrower_id"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	TenureMonths    int             `json:"tenure_months"`
	StartDate       time.Time       `json:"start_date"`
	EMIAmount       decimal.Decimal `json:"emi_amount,omitempty"`
}

// GetLoanRequest identifies a loan to retrieve.
type GetLoanRequest struct {
	LoanID string `json:"loan_id"`
}

// SimulatePrepaymentRequest carries a prepayment what-if query.
type SimulatePrepaymentRequest struct {
	LoanID           string          `json:"loan_id"`
	PrepaymentAmount decimal.Decimal `json:"prepayment_amount"`
}

// ForeclosureRequest identifies a loan and the lender's charges percentage.
type ForeclosureRequest struct {
	LoanID                       string          `json:"loan_id"`
	ForeclosureChargesPercentage decimal.Decimal `json:"foreclosure_charges_percentage"`
}

// RecordPaymentRequest carries the data for a loan payment.
type RecordPaymentRequest struct {
	LoanID         string          `json:"loan_id"`
	PaymentDate    time.Time       `json:"payment_date"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	PaymentType    string          `json:"payment_type"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	TransactionRef string          `json:"transaction_reference,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// LoanResponse is the external representation of a loan.
type LoanResponse struct {
	ID                string          `json:"id"`
	BorrowerID        string          `json:"borrower_id"`
	PrincipalAmount   decimal.Decimal `json:"principal_amount"`
	InterestRate      decimal.Decimal `json:"interest_rate"`
	TenureMonths      int             `json:"tenure_months"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	EMIAmount         decimal.Decimal `json:"emi_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// AmortizationEntryResponse represents a single schedule entry.
type AmortizationEntryResponse struct {
	PaymentNumber      int             `json:"payment_number"`
	PaymentDate        time.Time       `json:"payment_date"`
	EMIAmount          decimal.Decimal `json:"emi_amount"`
	InterestComponent  decimal.Decimal `json:"interest_component"`
	PrincipalComponent decimal.Decimal `json:"principal_component"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// AmortizationScheduleResponse is the full schedule with totals.
type AmortizationScheduleResponse struct {
	LoanID         string                      `json:"loan_id"`
	TenureMonths   int                         `json:"tenure_months"`
	TotalPrincipal decimal.Decimal             `json:"total_principal"`
	TotalInterest  decimal.Decimal             `json:"total_interest"`
	TotalPayable   decimal.Decimal             `json:"total_payable"`
	Schedule       []AmortizationEntryResponse `json:"schedule"`
}

// PrepaymentSimulationResponse is the outcome of a prepayment what-if.
type PrepaymentSimulationResponse struct {
	LoanID                string          `json:"loan_id"`
	FullyPaidOff          bool            `json:"fully_paid_off"`
	OriginalTenureMonths  int             `json:"original_tenure_months"`
	RemainingTenureMonths int             `json:"remaining_tenure_months"`
	NewTenureMonths       int             `json:"new_tenure_months"`
	SavedInterest         decimal.Decimal `json:"saved_interest"`
	Message               string          `json:"message,omitempty"`
}

// ForeclosureCalculationResponse is the early-payoff quote.
type ForeclosureCalculationResponse struct {
	LoanID                       string          `json:"loan_id"`
	OutstandingPrincipal         decimal.Decimal `json:"outstanding_principal"`
	OutstandingInterest          decimal.Decimal `json:"outstanding_interest"`
	ForeclosureCharges           decimal.Decimal `json:"foreclosure_charges"`
	ForeclosureChargesPercentage decimal.Decimal `json:"foreclosure_charges_percentage"`
	TotalForeclosureAmount       decimal.Decimal `json:"total_foreclosure_amount"`
	Message                      string          `json:"message,omitempty"`
}

// LoanPaymentResponse is the external representation of a ledger record.
type LoanPaymentResponse struct {
	ID                      string          `json:"id"`
	LoanID                  string          `json:"loan_id"`
	PaymentDate             time.Time       `json:"payment_date"`
	PaymentAmount           decimal.Decimal `json:"payment_amount"`
	PrincipalPaid           decimal.Decimal `json:"principal_paid"`
	InterestPaid            decimal.Decimal `json:"interest_paid"`
	OutstandingBalanceAfter decimal.Decimal `json:"outstanding_balance_after"`
	PaymentType             string          `json:"payment_type"`
	PaymentStatus           string          `json:"payment_status"`
	PaymentMethod           string          `json:"payment_method,omitempty"`
	TransactionRef          string          `json:"transaction_reference,omitempty"`
	Notes                   string          `json:"notes,omitempty"`
}

// PaymentHistoryResponse is the derived ledger view of a loan.
type PaymentHistoryResponse struct {
	LoanID             string                `json:"loan_id"`
	TotalPayments      int                   `json:"total_payments"`
	MissedPayments     int                   `json:"missed_payments"`
	TotalPaid          decimal.Decimal       `json:"total_paid"`
	TotalPrincipalPaid decimal.Decimal       `json:"total_principal_paid"`
	TotalInterestPaid  decimal.Decimal       `json:"total_interest_paid"`
	OutstandingBalance decimal.Decimal       `json:"outstanding_balance"`
	Payments           []LoanPaymentResponse `json:"payments"`
}

// LoanAnalysisResponse summarizes a loan's cost and progress.
type LoanAnalysisResponse struct {
	LoanID                   string          `json:"loan_id"`
	TotalInterestPayable     decimal.Decimal `json:"total_interest_payable"`
	TotalAmountPayable       decimal.Decimal `json:"total_amount_payable"`
	InterestToPrincipalRatio decimal.Decimal `json:"interest_to_principal_ratio"`
	EffectiveInterestRate    decimal.Decimal `json:"effective_interest_rate"`
	RemainingTenureMonths    int             `json:"remaining_tenure_months"`
	RemainingInterest        decimal.Decimal `json:"remaining_interest"`
	PaymentsCompleted        int             `json:"payments_completed"`
	TotalPayments            int             `json:"total_payments"`
	CompletionPercentage     decimal.Decimal `json:"completion_percentage"`
}

// MissedPaymentsResponse lists the materialized MISSED records of a loan.
type MissedPaymentsResponse struct {
	LoanID   string                `json:"loan_id"`
	Detected int                   `json:"detected"`
	Payments []LoanPaymentResponse `json:"payments"`
}
