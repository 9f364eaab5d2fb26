package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// PaymentType – immutable value object
// ---------------------------------------------------------------------------

// PaymentType classifies a ledger record.
type PaymentType struct {
	value string
}

const (
	paymentTypeEMI         = "EMI"
	paymentTypePrepayment  = "PREPAYMENT"
	paymentTypeForeclosure = "FORECLOSURE"
	paymentTypeMissed      = "MISSED"
)

var (
	PaymentTypeEMI         = PaymentType{value: paymentTypeEMI}
	PaymentTypePrepayment  = PaymentType{value: paymentTypePrepayment}
	PaymentTypeForeclosure = PaymentType{value: paymentTypeForeclosure}
	PaymentTypeMissed      = PaymentType{value: paymentTypeMissed}
)

var validPaymentTypes = map[string]PaymentType{
	paymentTypeEMI:         PaymentTypeEMI,
	paymentTypePrepayment:  PaymentTypePrepayment,
	paymentTypeForeclosure: PaymentTypeForeclosure,
	paymentTypeMissed:      PaymentTypeMissed,
}

// NewPaymentType creates a PaymentType from a raw string.
func NewPaymentType(s string) (PaymentType, error) {
	v, ok := validPaymentTypes[s]
	if !ok {
		return PaymentType{}, fmt.Errorf("invalid payment type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the type.
func (t PaymentType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t PaymentType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t PaymentType) Equal(other PaymentType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus represents the state of a ledger record.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusPaid      = "PAID"
	paymentStatusPending   = "PENDING"
	paymentStatusMissed    = "MISSED"
	paymentStatusScheduled = "SCHEDULED"
)

var (
	PaymentStatusPaid      = PaymentStatus{value: paymentStatusPaid}
	PaymentStatusPending   = PaymentStatus{value: paymentStatusPending}
	PaymentStatusMissed    = PaymentStatus{value: paymentStatusMissed}
	PaymentStatusScheduled = PaymentStatus{value: paymentStatusScheduled}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusPaid:      PaymentStatusPaid,
	paymentStatusPending:   PaymentStatusPending,
	paymentStatusMissed:    PaymentStatusMissed,
	paymentStatusScheduled: PaymentStatusScheduled,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// LoanStatus – immutable value object
// ---------------------------------------------------------------------------

// LoanStatus represents the lifecycle stage of a loan.
type LoanStatus struct {
	value string
}

const (
	loanStatusActive    = "ACTIVE"
	loanStatusFullyPaid = "FULLY_PAID"
)

var (
	LoanStatusActive    = LoanStatus{value: loanStatusActive}
	LoanStatusFullyPaid = LoanStatus{value: loanStatusFullyPaid}
)

var validLoanStatuses = map[string]LoanStatus{
	loanStatusActive:    LoanStatusActive,
	loanStatusFullyPaid: LoanStatusFullyPaid,
}

// NewLoanStatus creates a LoanStatus from a raw string.
func NewLoanStatus(s string) (LoanStatus, error) {
	v, ok := validLoanStatuses[s]
	if !ok {
		return LoanStatus{}, fmt.Errorf("invalid loan status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s LoanStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s LoanStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s LoanStatus) Equal(other LoanStatus) bool { return s.value == other.value }
