package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arthasetu/loan-service/internal/application/dto"
	"github.com/arthasetu/loan-service/internal/application/usecase"
	"github.com/arthasetu/loan-service/internal/domain/model"
)

// LoanHandler implements LoanServiceServer on top of the use cases.
type LoanHandler struct {
	UnimplementedLoanServiceServer

	createLoan         *usecase.CreateLoanUseCase
	getLoan            *usecase.GetLoanUseCase
	generateSchedule   *usecase.GenerateScheduleUseCase
	simulatePrepayment *usecase.SimulatePrepaymentUseCase
	calcForeclosure    *usecase.CalculateForeclosureUseCase
	procForeclosure    *usecase.ProcessForeclosureUseCase
	recordPayment      *usecase.RecordPaymentUseCase
	paymentHistory     *usecase.PaymentHistoryUseCase
	detectMissed       *usecase.DetectMissedPaymentsUseCase
	analyzeLoan        *usecase.AnalyzeLoanUseCase
}

// NewLoanHandler creates the handler with all use-case dependencies.
func NewLoanHandler(
	createLoan *usecase.CreateLoanUseCase,
	getLoan *usecase.GetLoanUseCase,
	generateSchedule *usecase.GenerateScheduleUseCase,
	simulatePrepayment *usecase.SimulatePrepaymentUseCase,
	calcForeclosure *usecase.CalculateForeclosureUseCase,
	procForeclosure *usecase.ProcessForeclosureUseCase,
	recordPayment *usecase.RecordPaymentUseCase,
	paymentHistory *usecase.PaymentHistoryUseCase,
	detectMissed *usecase.DetectMissedPaymentsUseCase,
	analyzeLoan *usecase.AnalyzeLoanUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoan:         createLoan,
		getLoan:            getLoan,
		generateSchedule:   generateSchedule,
		simulatePrepayment: simulatePrepayment,
		calcForeclosure:    calcForeclosure,
		procForeclosure:    procForeclosure,
		recordPayment:      recordPayment,
		paymentHistory:     paymentHistory,
		detectMissed:       detectMissed,
		analyzeLoan:        analyzeLoan,
	}
}

// CreateLoan opens a new loan.
func (h *LoanHandler) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*LoanResponse, error) {
	principal, err := parseAmount(req.PrincipalAmount, "principal_amount")
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount(req.InterestRate, "interest_rate")
	if err != nil {
		return nil, err
	}
	startDate, err := parseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	emi := decimal.Zero
	if req.EMIAmount != "" {
		if emi, err = parseAmount(req.EMIAmount, "emi_amount"); err != nil {
			return nil, err
		}
	}

	resp, err := h.createLoan.Execute(ctx, dto.CreateLoanRequest{
		BorrowerID:      req.BorrowerID,
		PrincipalAmount: principal,
		InterestRate:    rate,
		TenureMonths:    req.TenureMonths,
		StartDate:       startDate,
		EMIAmount:       emi,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// GetLoan retrieves a loan by ID.
func (h *LoanHandler) GetLoan(ctx context.Context, req *GetLoanRequest) (*LoanResponse, error) {
	resp, err := h.getLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ListLoans retrieves loans, optionally filtered by borrower.
func (h *LoanHandler) ListLoans(ctx context.Context, req *ListLoansRequest) (*ListLoansResponse, error) {
	var (
		loans []dto.LoanResponse
		err   error
	)
	if req.BorrowerID != "" {
		loans, err = h.getLoan.ByBorrower(ctx, req.BorrowerID)
	} else {
		loans, err = h.getLoan.List(ctx)
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &ListLoansResponse{Loans: loans}, nil
}

// GenerateAmortizationSchedule builds the full schedule for a loan.
func (h *LoanHandler) GenerateAmortizationSchedule(ctx context.Context, req *GetLoanRequest) (*AmortizationScheduleResponse, error) {
	resp, err := h.generateSchedule.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// SimulatePrepayment runs a prepayment what-if.
func (h *LoanHandler) SimulatePrepayment(ctx context.Context, req *SimulatePrepaymentRequest) (*PrepaymentSimulationResponse, error) {
	amount, err := parseAmount(req.PrepaymentAmount, "prepayment_amount")
	if err != nil {
		return nil, err
	}

	resp, err := h.simulatePrepayment.Execute(ctx, dto.SimulatePrepaymentRequest{
		LoanID:           req.LoanID,
		PrepaymentAmount: amount,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// CalculateForeclosure quotes an early payoff.
func (h *LoanHandler) CalculateForeclosure(ctx context.Context, req *ForeclosureRequest) (*ForeclosureCalculationResponse, error) {
	pct, err := parseAmount(req.ForeclosureChargesPercentage, "foreclosure_charges_percentage")
	if err != nil {
		return nil, err
	}

	resp, err := h.calcForeclosure.Execute(ctx, dto.ForeclosureRequest{
		LoanID:                       req.LoanID,
		ForeclosureChargesPercentage: pct,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// ProcessForeclosure settles a loan early and returns the payoff record.
func (h *LoanHandler) ProcessForeclosure(ctx context.Context, req *ForeclosureRequest) (*LoanPaymentResponse, error) {
	pct, err := parseAmount(req.ForeclosureChargesPercentage, "foreclosure_charges_percentage")
	if err != nil {
		return nil, err
	}

	resp, err := h.procForeclosure.Execute(ctx, dto.ForeclosureRequest{
		LoanID:                       req.LoanID,
		ForeclosureChargesPercentage: pct,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// RecordPayment applies an EMI or prepayment.
func (h *LoanHandler) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*LoanPaymentResponse, error) {
	amount, err := parseAmount(req.PaymentAmount, "payment_amount")
	if err != nil {
		return nil, err
	}
	var paymentDate time.Time
	if req.PaymentDate != "" {
		if paymentDate, err = parseDate(req.PaymentDate, "payment_date"); err != nil {
			return nil, err
		}
	}

	resp, err := h.recordPayment.Execute(ctx, dto.RecordPaymentRequest{
		LoanID:         req.LoanID,
		PaymentDate:    paymentDate,
		PaymentAmount:  amount,
		PaymentType:    req.PaymentType,
		PaymentMethod:  req.PaymentMethod,
		TransactionRef: req.TransactionRef,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// GetPaymentHistory returns the reconciled ledger view of a loan.
func (h *LoanHandler) GetPaymentHistory(ctx context.Context, req *GetLoanRequest) (*PaymentHistoryResponse, error) {
	resp, err := h.paymentHistory.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// GetMissedPayments lists materialized MISSED records.
func (h *LoanHandler) GetMissedPayments(ctx context.Context, req *GetLoanRequest) (*MissedPaymentsResponse, error) {
	resp, err := h.paymentHistory.MissedPayments(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// DetectMissedPayments scans for overdue installments and records them.
func (h *LoanHandler) DetectMissedPayments(ctx context.Context, req *GetLoanRequest) (*MissedPaymentsResponse, error) {
	resp, err := h.detectMissed.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

// AnalyzeLoan summarizes the loan's cost and progress.
func (h *LoanHandler) AnalyzeLoan(ctx context.Context, req *GetLoanRequest) (*LoanAnalysisResponse, error) {
	resp, err := h.analyzeLoan.Execute(ctx, dto.GetLoanRequest{LoanID: req.LoanID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &resp, nil
}

func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return d, nil
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return t, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, model.ErrLoanNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrInvalidLoanParameters),
		errors.Is(err, model.ErrInvalidPaymentAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrPrepaymentExceedsOutstanding),
		errors.Is(err, model.ErrPaymentExceedsOutstanding),
		errors.Is(err, model.ErrPrepaymentNotAmortizing),
		errors.Is(err, model.ErrLoanFullyPaid),
		errors.Is(err, model.ErrLedgerOutOfBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
