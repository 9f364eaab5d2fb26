package model

import "errors"

// Domain error kinds. Calculators and the ledger never surface raw arithmetic
// faults; degenerate numeric cases produce safe zero defaults instead.
var (
	// ErrLoanNotFound is returned when a loan ID does not resolve.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidLoanParameters is returned when a non-positive principal,
	// rate or tenure is passed to loan creation.
	ErrInvalidLoanParameters = errors.New("invalid loan parameters")

	// ErrInvalidPaymentAmount is returned when a payment or prepayment amount
	// is not strictly positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrPrepaymentExceedsOutstanding is returned when a recorded prepayment
	// is larger than the outstanding balance. The prepayment simulator treats
	// this case as a full payoff instead.
	ErrPrepaymentExceedsOutstanding = errors.New("prepayment exceeds outstanding balance")

	// ErrPrepaymentNotAmortizing is the debt-trap case: the post-prepayment
	// principal accrues interest at or above the fixed EMI, so the tenure
	// cannot be reduced without raising the EMI.
	ErrPrepaymentNotAmortizing = errors.New("prepayment insufficient to reduce tenure with current EMI")

	// ErrPaymentExceedsOutstanding is returned when an EMI payment is larger
	// than the outstanding balance plus the current period's interest.
	ErrPaymentExceedsOutstanding = errors.New("payment exceeds outstanding balance")

	// ErrLoanFullyPaid is returned when a payment is recorded against a loan
	// whose outstanding balance has already reached zero.
	ErrLoanFullyPaid = errors.New("loan is fully paid")

	// ErrLedgerOutOfBalance is returned when the newest ledger record's
	// running balance does not reconcile with the loan's outstanding amount.
	ErrLedgerOutOfBalance = errors.New("ledger does not reconcile with loan outstanding balance")
)
