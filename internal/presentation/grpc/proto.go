package grpc

// proto.go defines the gRPC server interface derived from
// arthasetu/loan/v1/loan.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the import
// from github.com/arthasetu/loan-service/api/gen/go/arthasetu/loan/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoanServiceServer is the server API for LoanService.
// It mirrors the proto-generated interface from arthasetu.loan.v1.LoanService.
type LoanServiceServer interface {
	CreateLoan(context.Context, *CreateLoanRequest) (*LoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error)
	GenerateAmortizationSchedule(context.Context, *GetLoanRequest) (*AmortizationScheduleResponse, error)
	SimulatePrepayment(context.Context, *SimulatePrepaymentRequest) (*PrepaymentSimulationResponse, error)
	CalculateForeclosure(context.Context, *ForeclosureRequest) (*ForeclosureCalculationResponse, error)
	ProcessForeclosure(context.Context, *ForeclosureRequest) (*LoanPaymentResponse, error)
	RecordPayment(context.Context, *RecordPaymentRequest) (*LoanPaymentResponse, error)
	GetPaymentHistory(context.Context, *GetLoanRequest) (*PaymentHistoryResponse, error)
	GetMissedPayments(context.Context, *GetLoanRequest) (*MissedPaymentsResponse, error)
	DetectMissedPayments(context.Context, *GetLoanRequest) (*MissedPaymentsResponse, error)
	AnalyzeLoan(context.Context, *GetLoanRequest) (*LoanAnalysisResponse, error)
	mustEmbedUnimplementedLoanServiceServer()
}

// UnimplementedLoanServiceServer provides forward-compatible default implementations.
type UnimplementedLoanServiceServer struct{}

func (UnimplementedLoanServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLoanServiceServer) GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanServiceServer) ListLoans(context.Context, *ListLoansRequest) (*ListLoansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLoanServiceServer) GenerateAmortizationSchedule(context.Context, *GetLoanRequest) (*AmortizationScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateAmortizationSchedule not implemented")
}
func (UnimplementedLoanServiceServer) SimulatePrepayment(context.Context, *SimulatePrepaymentRequest) (*PrepaymentSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulatePrepayment not implemented")
}
func (UnimplementedLoanServiceServer) CalculateForeclosure(context.Context, *ForeclosureRequest) (*ForeclosureCalculationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateForeclosure not implemented")
}
func (UnimplementedLoanServiceServer) ProcessForeclosure(context.Context, *ForeclosureRequest) (*LoanPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessForeclosure not implemented")
}
func (UnimplementedLoanServiceServer) RecordPayment(context.Context, *RecordPaymentRequest) (*LoanPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordPayment not implemented")
}
func (UnimplementedLoanServiceServer) GetPaymentHistory(context.Context, *GetLoanRequest) (*PaymentHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPaymentHistory not implemented")
}
func (UnimplementedLoanServiceServer) GetMissedPayments(context.Context, *GetLoanRequest) (*MissedPaymentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMissedPayments not implemented")
}
func (UnimplementedLoanServiceServer) DetectMissedPayments(context.Context, *GetLoanRequest) (*MissedPaymentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DetectMissedPayments not implemented")
}
func (UnimplementedLoanServiceServer) AnalyzeLoan(context.Context, *GetLoanRequest) (*LoanAnalysisResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeLoan not implemented")
}
func (UnimplementedLoanServiceServer) mustEmbedUnimplementedLoanServiceServer() {}

// RegisterLoanServiceServer registers the LoanServiceServer with the gRPC server.
func RegisterLoanServiceServer(s *grpclib.Server, srv LoanServiceServer) {
	s.RegisterService(&_LoanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "arthasetu.loan.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLoan", Handler: _LoanService_CreateLoan_Handler},                                     //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanService_GetLoan_Handler},                                           //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LoanService_ListLoans_Handler},                                       //nolint:revive // gRPC handler registration
		{MethodName: "GenerateAmortizationSchedule", Handler: _LoanService_GenerateAmortizationSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SimulatePrepayment", Handler: _LoanService_SimulatePrepayment_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "CalculateForeclosure", Handler: _LoanService_CalculateForeclosure_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ProcessForeclosure", Handler: _LoanService_ProcessForeclosure_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "RecordPayment", Handler: _LoanService_RecordPayment_Handler},                               //nolint:revive // gRPC handler registration
		{MethodName: "GetPaymentHistory", Handler: _LoanService_GetPaymentHistory_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "GetMissedPayments", Handler: _LoanService_GetMissedPayments_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "DetectMissedPayments", Handler: _LoanService_DetectMissedPayments_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeLoan", Handler: _LoanService_AnalyzeLoan_Handler},                                   //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GenerateAmortizationSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GenerateAmortizationSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/GenerateAmortizationSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GenerateAmortizationSchedule(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_SimulatePrepayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulatePrepaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).SimulatePrepayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/SimulatePrepayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).SimulatePrepayment(ctx, req.(*SimulatePrepaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CalculateForeclosure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForeclosureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CalculateForeclosure(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/CalculateForeclosure",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CalculateForeclosure(ctx, req.(*ForeclosureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ProcessForeclosure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForeclosureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ProcessForeclosure(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/ProcessForeclosure",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ProcessForeclosure(ctx, req.(*ForeclosureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_RecordPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).RecordPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/RecordPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).RecordPayment(ctx, req.(*RecordPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetPaymentHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetPaymentHistory(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/GetPaymentHistory",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetPaymentHistory(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetMissedPayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetMissedPayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/GetMissedPayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetMissedPayments(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_DetectMissedPayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).DetectMissedPayments(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/DetectMissedPayments",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).DetectMissedPayments(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_AnalyzeLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).AnalyzeLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/arthasetu.loan.v1.LoanService/AnalyzeLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).AnalyzeLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}
