package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/arthasetu/loan-service/internal/domain/event"
	"github.com/arthasetu/loan-service/internal/domain/valueobject"
	"github.com/arthasetu/loan-service/pkg/events"
	"github.com/arthasetu/loan-service/pkg/money"
)

// ---------------------------------------------------------------------------
// Loan aggregate root
// ---------------------------------------------------------------------------

// Loan is an immutable aggregate. Mutations return a new copy; the outstanding
// balance only ever changes through payment recording, so it is monotonically
// non-increasing over the loan's life.
type Loan struct {
	id                string
	borrowerID        string
	principalAmount   decimal.Decimal
	interestRate      decimal.Decimal // annual percentage
	tenureMonths      int
	startDate         time.Time
	endDate           time.Time
	emiAmount         decimal.Decimal
	outstandingAmount decimal.Decimal
	status            valueobject.LoanStatus
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	domainEvents      events.Collector
}

// PaymentInput carries the caller-supplied fields of a payment being recorded.
type PaymentInput struct {
	Type           valueobject.PaymentType
	Amount         decimal.Decimal
	Date           time.Time
	Method         string
	TransactionRef string
	Notes          string
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLoan creates a loan and derives what the caller left implicit: the EMI
// when absent, the outstanding balance (initialized to the principal) and the
// end date (start date plus tenure). The loan starts ACTIVE.
func NewLoan(
	borrowerID string,
	principal, annualRatePercent decimal.Decimal,
	tenureMonths int,
	startDate time.Time,
	emiAmount decimal.Decimal,
	now time.Time,
) (Loan, error) {
	if borrowerID == "" {
		return Loan{}, ErrInvalidLoanParameters
	}
	if principal.LessThanOrEqual(decimal.Zero) || annualRatePercent.LessThanOrEqual(decimal.Zero) || tenureMonths <= 0 {
		return Loan{}, ErrInvalidLoanParameters
	}
	if startDate.IsZero() {
		return Loan{}, ErrInvalidLoanParameters
	}

	if emiAmount.LessThanOrEqual(decimal.Zero) {
		emiAmount = CalculateEMI(principal, annualRatePercent, tenureMonths)
	}

	loan := Loan{
		id:                uuid.New().String(),
		borrowerID:        borrowerID,
		principalAmount:   principal,
		interestRate:      annualRatePercent,
		tenureMonths:      tenureMonths,
		startDate:         startDate,
		endDate:           startDate.AddDate(0, tenureMonths, 0),
		emiAmount:         emiAmount,
		outstandingAmount: principal,
		status:            valueobject.LoanStatusActive,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}

	loan.domainEvents.Record(event.NewLoanCreated(
		loan.id, borrowerID, principal, annualRatePercent, emiAmount,
		tenureMonths, startDate, loan.endDate,
	))

	return loan, nil
}

// ReconstructLoan rebuilds a Loan aggregate from persistence.
func ReconstructLoan(
	id, borrowerID string,
	principal, annualRatePercent decimal.Decimal,
	tenureMonths int,
	startDate, endDate time.Time,
	emiAmount, outstandingAmount decimal.Decimal,
	status valueobject.LoanStatus,
	version int,
	createdAt, updatedAt time.Time,
) Loan {
	return Loan{
		id:                id,
		borrowerID:        borrowerID,
		principalAmount:   principal,
		interestRate:      annualRatePercent,
		tenureMonths:      tenureMonths,
		startDate:         startDate,
		endDate:           endDate,
		emiAmount:         emiAmount,
		outstandingAmount: outstandingAmount,
		status:            status,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ---------------------------------------------------------------------------
// Ledger transitions
// ---------------------------------------------------------------------------

// RecordPayment applies an EMI or prepayment, splitting it into principal and
// interest and decreasing the outstanding balance. A rejected payment returns
// the receiver unchanged.
//
// EMI payments accrue the current period's interest on the outstanding
// balance; the remainder retires principal, so any rounding residual lands on
// the principal side. Prepayments go to principal in full.
func (l Loan) RecordPayment(in PaymentInput, now time.Time) (Loan, LoanPayment, error) {
	if l.status.Equal(valueobject.LoanStatusFullyPaid) || l.outstandingAmount.IsZero() {
		return l, LoanPayment{}, ErrLoanFullyPaid
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return l, LoanPayment{}, ErrInvalidPaymentAmount
	}

	var principalPaid, interestPaid decimal.Decimal

	switch {
	case in.Type.Equal(valueobject.PaymentTypeEMI):
		interestPaid = money.Round2(l.outstandingAmount.Mul(money.MonthlyRate(l.interestRate)))
		if in.Amount.GreaterThan(l.outstandingAmount.Add(interestPaid)) {
			return l, LoanPayment{}, ErrPaymentExceedsOutstanding
		}
		// A payment smaller than the accrued interest covers interest only;
		// principal paid is never negative.
		if interestPaid.GreaterThan(in.Amount) {
			interestPaid = in.Amount
		}
		principalPaid = in.Amount.Sub(interestPaid)
		if principalPaid.GreaterThan(l.outstandingAmount) {
			principalPaid = l.outstandingAmount
			interestPaid = in.Amount.Sub(principalPaid)
		}

	case in.Type.Equal(valueobject.PaymentTypePrepayment):
		if in.Amount.GreaterThan(l.outstandingAmount) {
			return l, LoanPayment{}, ErrPrepaymentExceedsOutstanding
		}
		principalPaid = in.Amount
		interestPaid = decimal.Zero

	default:
		return l, LoanPayment{}, ErrInvalidPaymentAmount
	}

	newOutstanding := l.outstandingAmount.Sub(principalPaid)

	payment := LoanPayment{
		ID:                      uuid.New().String(),
		LoanID:                  l.id,
		PaymentDate:             in.Date,
		Amount:                  in.Amount,
		PrincipalPaid:           principalPaid,
		InterestPaid:            interestPaid,
		OutstandingBalanceAfter: newOutstanding,
		Type:                    in.Type,
		Status:                  valueobject.PaymentStatusPaid,
		Method:                  in.Method,
		TransactionRef:          in.TransactionRef,
		Notes:                   in.Notes,
		CreatedAt:               now,
	}

	next := l
	next.outstandingAmount = newOutstanding
	next.updatedAt = now
	next.domainEvents.CopyFrom(l.domainEvents)
	next.domainEvents.Record(event.NewPaymentRecorded(
		l.id, payment.ID, in.Type.String(),
		in.Amount, principalPaid, interestPaid, newOutstanding,
	))

	if newOutstanding.IsZero() {
		next.status = valueobject.LoanStatusFullyPaid
		next.domainEvents.Record(event.NewLoanPaidOff(l.id))
	}

	return next, payment, nil
}

// Foreclose pays off the loan early in full, zeroing the outstanding balance.
// The foreclosure record's interest side carries the accrued interest plus
// the charges, so amount = principal + interest still holds.
func (l Loan) Foreclose(chargesPercentage decimal.Decimal, now time.Time) (Loan, LoanPayment, ForeclosureQuote, error) {
	if l.status.Equal(valueobject.LoanStatusFullyPaid) || l.outstandingAmount.IsZero() {
		return l, LoanPayment{}, ForeclosureQuote{}, ErrLoanFullyPaid
	}

	quote := QuoteForeclosure(l.outstandingAmount, l.interestRate, chargesPercentage)

	payment := LoanPayment{
		ID:                      uuid.New().String(),
		LoanID:                  l.id,
		PaymentDate:             now,
		Amount:                  quote.TotalAmount,
		PrincipalPaid:           quote.OutstandingPrincipal,
		InterestPaid:            quote.OutstandingInterest.Add(quote.ForeclosureCharges),
		OutstandingBalanceAfter: decimal.Zero,
		Type:                    valueobject.PaymentTypeForeclosure,
		Status:                  valueobject.PaymentStatusPaid,
		Notes:                   "loan foreclosure with " + quote.ChargesPercentage.String() + "% charges",
		CreatedAt:               now,
	}

	next := l
	next.outstandingAmount = decimal.Zero
	next.status = valueobject.LoanStatusFullyPaid
	next.updatedAt = now
	next.domainEvents.CopyFrom(l.domainEvents)
	next.domainEvents.Record(event.NewLoanForeclosed(l.id, quote.TotalAmount, quote.ForeclosureCharges))
	next.domainEvents.Record(event.NewLoanPaidOff(l.id))

	return next, payment, quote, nil
}

// ---------------------------------------------------------------------------
// Read-only views
// ---------------------------------------------------------------------------

// Schedule builds the contractual amortization schedule for the loan.
func (l Loan) Schedule() AmortizationSchedule {
	return BuildAmortizationSchedule(l.principalAmount, l.interestRate, l.tenureMonths, l.emiAmount, l.startDate)
}

// SimulatePrepayment runs a prepayment simulation against the loan's current
// outstanding snapshot.
func (l Loan) SimulatePrepayment(amount decimal.Decimal) (PrepaymentQuote, error) {
	return SimulatePrepayment(l.outstandingAmount, l.emiAmount, l.interestRate, l.tenureMonths, amount)
}

// QuoteForeclosure computes the current payoff amount without mutating the loan.
func (l Loan) QuoteForeclosure(chargesPercentage decimal.Decimal) ForeclosureQuote {
	return QuoteForeclosure(l.outstandingAmount, l.interestRate, chargesPercentage)
}

// DueDate returns the due date of the 1-based period n.
func (l Loan) DueDate(n int) time.Time {
	return l.startDate.AddDate(0, n, 0)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Loan) ID() string                         { return l.id }
func (l Loan) BorrowerID() string                 { return l.borrowerID }
func (l Loan) PrincipalAmount() decimal.Decimal   { return l.principalAmount }
func (l Loan) InterestRate() decimal.Decimal      { return l.interestRate }
func (l Loan) TenureMonths() int                  { return l.tenureMonths }
func (l Loan) StartDate() time.Time               { return l.startDate }
func (l Loan) EndDate() time.Time                 { return l.endDate }
func (l Loan) EMIAmount() decimal.Decimal         { return l.emiAmount }
func (l Loan) OutstandingAmount() decimal.Decimal { return l.outstandingAmount }
func (l Loan) Status() valueobject.LoanStatus     { return l.status }
func (l Loan) Version() int                       { return l.version }
func (l Loan) CreatedAt() time.Time               { return l.createdAt }
func (l Loan) UpdatedAt() time.Time               { return l.updatedAt }

// DomainEvents returns the events collected on this copy of the aggregate.
func (l Loan) DomainEvents() []event.DomainEvent { return l.domainEvents.Events() }

// ClearEvents returns a copy with an empty event list.
func (l Loan) ClearEvents() Loan {
	next := l
	next.domainEvents = events.Collector{}
	return next
}
