package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/domain/valueobject"
)

// LoanPayment is one immutable ledger record. Corrections are new records,
// never in-place edits.
type LoanPayment struct {
	ID                      string
	LoanID                  string
	PaymentDate             time.Time
	Amount                  decimal.Decimal
	PrincipalPaid           decimal.Decimal
	InterestPaid            decimal.Decimal
	OutstandingBalanceAfter decimal.Decimal
	Type                    valueobject.PaymentType
	Status                  valueobject.PaymentStatus
	Method                  string
	TransactionRef          string
	Notes                   string
	CreatedAt               time.Time
}

// NewMissedPayment materializes a MISSED record for an unpaid due date. It
// carries zero principal and interest and leaves the balance untouched.
func NewMissedPayment(loanID string, dueDate time.Time, outstandingBalance decimal.Decimal, now time.Time) LoanPayment {
	return LoanPayment{
		ID:                      uuid.New().String(),
		LoanID:                  loanID,
		PaymentDate:             dueDate,
		Amount:                  decimal.Zero,
		PrincipalPaid:           decimal.Zero,
		InterestPaid:            decimal.Zero,
		OutstandingBalanceAfter: outstandingBalance,
		Type:                    valueobject.PaymentTypeMissed,
		Status:                  valueobject.PaymentStatusMissed,
		CreatedAt:               now,
	}
}
