package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// LoanCreated is raised when a new loan enters the system.
type LoanCreated struct {
	events.BaseEvent
	BorrowerID      string          `json:"borrower_id"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	EMIAmount       decimal.Decimal `json:"emi_amount"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	TenureMonths    int             `json:"tenure_months"`
}

func NewLoanCreated(
	loanID, borrowerID string,
	principal, interestRate, emi decimal.Decimal,
	tenureMonths int,
	startDate, endDate time.Time,
) LoanCreated {
	return LoanCreated{
		BaseEvent:       events.NewBaseEvent("loan.created", loanID, "Loan"),
		BorrowerID:      borrowerID,
		PrincipalAmount: principal,
		InterestRate:    interestRate,
		EMIAmount:       emi,
		TenureMonths:    tenureMonths,
		StartDate:       startDate,
		EndDate:         endDate,
	}
}

// PaymentRecorded is raised when an EMI or prepayment is applied to a loan.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID          string          `json:"payment_id"`
	PaymentType        string          `json:"payment_type"`
	Amount             decimal.Decimal `json:"amount"`
	PrincipalPaid      decimal.Decimal `json:"principal_paid"`
	InterestPaid       decimal.Decimal `json:"interest_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentRecorded(
	loanID, paymentID, paymentType string,
	amount, principalPaid, interestPaid, outstandingBalance decimal.Decimal,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:          events.NewBaseEvent("loan.payment.recorded", loanID, "Loan"),
		PaymentID:          paymentID,
		PaymentType:        paymentType,
		Amount:             amount,
		PrincipalPaid:      principalPaid,
		InterestPaid:       interestPaid,
		OutstandingBalance: outstandingBalance,
	}
}

// PaymentMissed is raised when a scheduled installment goes unpaid past its
// grace window.
type PaymentMissed struct {
	events.BaseEvent
	DueDate            time.Time       `json:"due_date"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func NewPaymentMissed(loanID string, dueDate time.Time, outstandingBalance decimal.Decimal) PaymentMissed {
	return PaymentMissed{
		BaseEvent:          events.NewBaseEvent("loan.payment.missed", loanID, "Loan"),
		DueDate:            dueDate,
		OutstandingBalance: outstandingBalance,
	}
}

// LoanForeclosed is raised when a loan is paid off early in full.
type LoanForeclosed struct {
	events.BaseEvent
	TotalAmount        decimal.Decimal `json:"total_amount"`
	ForeclosureCharges decimal.Decimal `json:"foreclosure_charges"`
}

func NewLoanForeclosed(loanID string, totalAmount, charges decimal.Decimal) LoanForeclosed {
	return LoanForeclosed{
		BaseEvent:          events.NewBaseEvent("loan.foreclosed", loanID, "Loan"),
		TotalAmount:        totalAmount,
		ForeclosureCharges: charges,
	}
}

// LoanPaidOff is raised when the outstanding balance reaches zero.
type LoanPaidOff struct {
	events.BaseEvent
}

func NewLoanPaidOff(loanID string) LoanPaidOff {
	return LoanPaidOff{
		BaseEvent: events.NewBaseEvent("loan.paid_off", loanID, "Loan"),
	}
}
