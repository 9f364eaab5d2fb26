package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
	pgshared "github.com/arthasetu/loan-service/pkg/postgres"
)

const paymentColumns = `
	id, loan_id, payment_date, amount, principal_paid, interest_paid,
	outstanding_balance_after, payment_type, payment_status,
	payment_method, transaction_reference, notes, created_at
`

// PaymentRepo implements port.LoanPaymentRepository on PostgreSQL. The table
// is append-only; rows are never updated or deleted.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a PostgreSQL-backed payment ledger repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Append inserts one ledger record.
func (r *PaymentRepo) Append(ctx context.Context, payment model.LoanPayment) error {
	return insertPayment(ctx, r.pool, payment)
}

// FindByLoanID retrieves a loan's full ledger in payment order.
func (r *PaymentRepo) FindByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY payment_date, created_at`
	return r.queryPayments(ctx, query, loanID)
}

// FindMissedByLoanID retrieves only the MISSED records of a loan.
func (r *PaymentRepo) FindMissedByLoanID(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM loan_payments
		WHERE loan_id = $1 AND payment_status = 'MISSED'
		ORDER BY payment_date`
	return r.queryPayments(ctx, query, loanID)
}

func (r *PaymentRepo) queryPayments(ctx context.Context, query string, args ...any) ([]model.LoanPayment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.LoanPayment
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func insertPayment(ctx context.Context, q pgshared.Querier, payment model.LoanPayment) error {
	query := `
		INSERT INTO loan_payments (
			id, loan_id, payment_date, amount, principal_paid, interest_paid,
			outstanding_balance_after, payment_type, payment_status,
			payment_method, transaction_reference, notes, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`
	_, err := q.Exec(ctx, query,
		payment.ID, payment.LoanID, payment.PaymentDate,
		payment.Amount, payment.PrincipalPaid, payment.InterestPaid,
		payment.OutstandingBalanceAfter, payment.Type.String(), payment.Status.String(),
		payment.Method, payment.TransactionRef, payment.Notes, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func scanPaymentRow(s scannable) (model.LoanPayment, error) {
	var (
		p                    model.LoanPayment
		typeStr, statusStr   string
		paymentDate, created time.Time
		amount, principal    decimal.Decimal
		interest, balance    decimal.Decimal
	)

	err := s.Scan(
		&p.ID, &p.LoanID, &paymentDate, &amount, &principal, &interest,
		&balance, &typeStr, &statusStr,
		&p.Method, &p.TransactionRef, &p.Notes, &created,
	)
	if err != nil {
		return model.LoanPayment{}, fmt.Errorf("scan payment: %w", err)
	}

	paymentType, err := valueobject.NewPaymentType(typeStr)
	if err != nil {
		return model.LoanPayment{}, fmt.Errorf("parse payment type: %w", err)
	}
	status, err := valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return model.LoanPayment{}, fmt.Errorf("parse payment status: %w", err)
	}

	p.PaymentDate = paymentDate
	p.Amount = amount
	p.PrincipalPaid = principal
	p.InterestPaid = interest
	p.OutstandingBalanceAfter = balance
	p.Type = paymentType
	p.Status = status
	p.CreatedAt = created

	return p, nil
}
