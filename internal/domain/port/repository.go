package port

import (
	"context"

	"github.com/arthasetu/loan-service/internal/domain/event"
	"github.com/arthasetu/loan-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	Save(ctx context.Context, loan model.Loan) error
	// SaveWithPayment persists the loan's new balance and appends the payment
	// record in a single transaction, so the ledger append is atomic with the
	// balance update.
	SaveWithPayment(ctx context.Context, loan model.Loan, payment model.LoanPayment) error
	FindByID(ctx context.Context, id string) (model.Loan, error)
	FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error)
	List(ctx context.Context) ([]model.Loan, error)
}

// LoanPaymentRepository reads and appends ledger records. Records are
// append-only; there is no update or delete.
type LoanPaymentRepository interface {
	Append(ctx context.Context, payment model.LoanPayment) error
	FindByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error)
	FindMissedByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
