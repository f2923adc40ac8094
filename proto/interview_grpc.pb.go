// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: interview.proto

package proto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InterviewService_RunOwnerTurn_FullMethodName   = "/interview.v1.InterviewService/RunOwnerTurn"
	InterviewService_RunVisitorTurn_FullMethodName = "/interview.v1.InterviewService/RunVisitorTurn"
	InterviewService_Evaluate_FullMethodName       = "/interview.v1.InterviewService/Evaluate"
)

// InterviewServiceClient is the client API for InterviewService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InterviewService is implemented by the external interview runtime. It
// plays both conversation agents and the judge; the daemon is a pure
// client.
type InterviewServiceClient interface {
	// RunOwnerTurn produces the owner agent's next question.
	RunOwnerTurn(ctx context.Context, in *TurnRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	// RunVisitorTurn produces the visitor agent's answer.
	RunVisitorTurn(ctx context.Context, in *TurnRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	// Evaluate renders the judge's verdict on a finished conversation.
	Evaluate(ctx context.Context, in *JudgeRequest, opts ...grpc.CallOption) (*JudgeResponse, error)
}

type interviewServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInterviewServiceClient(cc grpc.ClientConnInterface) InterviewServiceClient {
	return &interviewServiceClient{cc}
}

func (c *interviewServiceClient) RunOwnerTurn(ctx context.Context, in *TurnRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TurnResponse)
	err := c.cc.Invoke(ctx, InterviewService_RunOwnerTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) RunVisitorTurn(ctx context.Context, in *TurnRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TurnResponse)
	err := c.cc.Invoke(ctx, InterviewService_RunVisitorTurn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewServiceClient) Evaluate(ctx context.Context, in *JudgeRequest, opts ...grpc.CallOption) (*JudgeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JudgeResponse)
	err := c.cc.Invoke(ctx, InterviewService_Evaluate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InterviewServiceServer is the server API for InterviewService service.
// All implementations must embed UnimplementedInterviewServiceServer
// for forward compatibility.
//
// InterviewService is implemented by the external interview runtime. It
// plays both conversation agents and the judge; the daemon is a pure
// client.
type InterviewServiceServer interface {
	// RunOwnerTurn produces the owner agent's next question.
	RunOwnerTurn(context.Context, *TurnRequest) (*TurnResponse, error)
	// RunVisitorTurn produces the visitor agent's answer.
	RunVisitorTurn(context.Context, *TurnRequest) (*TurnResponse, error)
	// Evaluate renders the judge's verdict on a finished conversation.
	Evaluate(context.Context, *JudgeRequest) (*JudgeResponse, error)
	mustEmbedUnimplementedInterviewServiceServer()
}

// UnimplementedInterviewServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInterviewServiceServer struct{}

func (UnimplementedInterviewServiceServer) RunOwnerTurn(context.Context, *TurnRequest) (*TurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunOwnerTurn not implemented")
}
func (UnimplementedInterviewServiceServer) RunVisitorTurn(context.Context, *TurnRequest) (*TurnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunVisitorTurn not implemented")
}
func (UnimplementedInterviewServiceServer) Evaluate(context.Context, *JudgeRequest) (*JudgeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedInterviewServiceServer) mustEmbedUnimplementedInterviewServiceServer() {}
func (UnimplementedInterviewServiceServer) testEmbeddedByValue()                          {}

// UnsafeInterviewServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InterviewServiceServer will
// result in compilation errors.
type UnsafeInterviewServiceServer interface {
	mustEmbedUnimplementedInterviewServiceServer()
}

func RegisterInterviewServiceServer(s grpc.ServiceRegistrar, srv InterviewServiceServer) {
	// If the following call panics, it indicates UnimplementedInterviewServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InterviewService_ServiceDesc, srv)
}

func _InterviewService_RunOwnerTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).RunOwnerTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_RunOwnerTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).RunOwnerTurn(ctx, req.(*TurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_RunVisitorTurn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TurnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).RunVisitorTurn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_RunVisitorTurn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).RunVisitorTurn(ctx, req.(*TurnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewService_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JudgeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewServiceServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InterviewService_Evaluate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InterviewServiceServer).Evaluate(ctx, req.(*JudgeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InterviewService_ServiceDesc is the grpc.ServiceDesc for InterviewService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InterviewService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "interview.v1.InterviewService",
	HandlerType: (*InterviewServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunOwnerTurn",
			Handler:    _InterviewService_RunOwnerTurn_Handler,
		},
		{
			MethodName: "RunVisitorTurn",
			Handler:    _InterviewService_RunVisitorTurn_Handler,
		},
		{
			MethodName: "Evaluate",
			Handler:    _InterviewService_Evaluate_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "interview.proto",
}
