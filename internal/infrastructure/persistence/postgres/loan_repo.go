package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/domain/model"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
	pgshared "github.com/arthasetu/loan-service/pkg/postgres"
)

// ErrVersionConflict is returned when a concurrent writer updated the loan
// between read and save.
var ErrVersionConflict = errors.New("optimistic locking conflict on loan")

const loanColumns = `
	id, borrower_id, principal_amount, interest_rate, tenure_months,
	start_date, end_date, emi_amount, outstanding_amount,
	status, version, created_at, updated_at
`

// LoanRepo implements port.LoanRepository on PostgreSQL.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan. Updates carry an optimistic version check: the row is
// only written when its stored version matches the one the aggregate was
// loaded with.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return saveLoan(ctx, r.pool, loan)
}

// SaveWithPayment persists the loan update and the ledger record in one
// transaction, so the balance and the ledger cannot diverge.
func (r *LoanRepo) SaveWithPayment(ctx context.Context, loan model.Loan, payment model.LoanPayment) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := saveLoan(ctx, tx, loan); err != nil {
			return err
		}
		return insertPayment(ctx, tx, payment)
	})
}

// FindByID retrieves a loan by ID.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Loan{}, model.ErrLoanNotFound
	}
	return loan, err
}

// FindByBorrowerID retrieves all loans of one borrower, newest first.
func (r *LoanRepo) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE borrower_id = $1 ORDER BY created_at DESC`
	return r.queryLoans(ctx, query, borrowerID)
}

// List retrieves all loans, newest first.
func (r *LoanRepo) List(ctx context.Context) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY created_at DESC`
	return r.queryLoans(ctx, query)
}

func (r *LoanRepo) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}
	return loans, rows.Err()
}

func saveLoan(ctx context.Context, q pgshared.Querier, loan model.Loan) error {
	query := `
		INSERT INTO loans (
			id, borrower_id, principal_amount, interest_rate, tenure_months,
			start_date, end_date, emi_amount, outstanding_amount,
			status, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			outstanding_amount = EXCLUDED.outstanding_amount,
			status             = EXCLUDED.status,
			version            = loans.version + 1,
			updated_at         = EXCLUDED.updated_at
		WHERE loans.version = $11
	`
	tag, err := q.Exec(ctx, query,
		loan.ID(), loan.BorrowerID(), loan.PrincipalAmount(), loan.InterestRate(), loan.TenureMonths(),
		loan.StartDate(), loan.EndDate(), loan.EMIAmount(), loan.OutstandingAmount(),
		loan.Status().String(), loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, borrowerID            string
		principal, rate           decimal.Decimal
		tenureMonths              int
		startDate, endDate        time.Time
		emiAmount, outstanding    decimal.Decimal
		statusStr                 string
		version                   int
		createdAt, updatedAt      time.Time
	)

	err := s.Scan(
		&id, &borrowerID, &principal, &rate, &tenureMonths,
		&startDate, &endDate, &emiAmount, &outstanding,
		&statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, err
	}

	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, borrowerID,
		principal, rate,
		tenureMonths,
		startDate, endDate,
		emiAmount, outstanding,
		status,
		version, createdAt, updatedAt,
	), nil
}
