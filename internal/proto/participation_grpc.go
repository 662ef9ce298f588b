package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ParticipationService_CreateParticipation_FullMethodName = "/bandroom.v1.ParticipationService/CreateParticipation"
	ParticipationService_GetParticipation_FullMethodName    = "/bandroom.v1.ParticipationService/GetParticipation"
	ParticipationService_ListParticipations_FullMethodName  = "/bandroom.v1.ParticipationService/ListParticipations"
	ParticipationService_UpdateParticipation_FullMethodName = "/bandroom.v1.ParticipationService/UpdateParticipation"
	ParticipationService_DeleteParticipation_FullMethodName = "/bandroom.v1.ParticipationService/DeleteParticipation"
)

// ParticipationServiceClient is the client API for ParticipationService.
type ParticipationServiceClient interface {
	CreateParticipation(ctx context.Context, in *CreateParticipationRequest, opts ...grpc.CallOption) (*Participation, error)
	GetParticipation(ctx context.Context, in *GetParticipationRequest, opts ...grpc.CallOption) (*Participation, error)
	ListParticipations(ctx context.Context, in *ListParticipationsRequest, opts ...grpc.CallOption) (*ListParticipationsResponse, error)
	UpdateParticipation(ctx context.Context, in *UpdateParticipationRequest, opts ...grpc.CallOption) (*Participation, error)
	DeleteParticipation(ctx context.Context, in *DeleteParticipationRequest, opts ...grpc.CallOption) (*Empty, error)
}

type participationServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewParticipationServiceClient(cc grpc.ClientConnInterface) ParticipationServiceClient {
	return &participationServiceClient{cc}
}

func (c *participationServiceClient) CreateParticipation(ctx context.Context, in *CreateParticipationRequest, opts ...grpc.CallOption) (*Participation, error) {
	out := new(Participation)
	if err := c.cc.Invoke(ctx, ParticipationService_CreateParticipation_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participationServiceClient) GetParticipation(ctx context.Context, in *GetParticipationRequest, opts ...grpc.CallOption) (*Participation, error) {
	out := new(Participation)
	if err := c.cc.Invoke(ctx, ParticipationService_GetParticipation_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participationServiceClient) ListParticipations(ctx context.Context, in *ListParticipationsRequest, opts ...grpc.CallOption) (*ListParticipationsResponse, error) {
	out := new(ListParticipationsResponse)
	if err := c.cc.Invoke(ctx, ParticipationService_ListParticipations_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participationServiceClient) UpdateParticipation(ctx context.Context, in *UpdateParticipationRequest, opts ...grpc.CallOption) (*Participation, error) {
	out := new(Participation)
	if err := c.cc.Invoke(ctx, ParticipationService_UpdateParticipation_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *participationServiceClient) DeleteParticipation(ctx context.Context, in *DeleteParticipationRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, ParticipationService_DeleteParticipation_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// ParticipationServiceServer is the server API for ParticipationService.
type ParticipationServiceServer interface {
	CreateParticipation(context.Context, *CreateParticipationRequest) (*Participation, error)
	GetParticipation(context.Context, *GetParticipationRequest) (*Participation, error)
	ListParticipations(context.Context, *ListParticipationsRequest) (*ListParticipationsResponse, error)
	UpdateParticipation(context.Context, *UpdateParticipationRequest) (*Participation, error)
	DeleteParticipation(context.Context, *DeleteParticipationRequest) (*Empty, error)
}

func RegisterParticipationServiceServer(s grpc.ServiceRegistrar, srv ParticipationServiceServer) {
	s.RegisterService(&ParticipationService_ServiceDesc, srv)
}

func _ParticipationService_CreateParticipation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateParticipationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipationServiceServer).CreateParticipation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParticipationService_CreateParticipation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ParticipationServiceServer).CreateParticipation(ctx, req.(*CreateParticipationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipationService_GetParticipation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetParticipationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipationServiceServer).GetParticipation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParticipationService_GetParticipation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ParticipationServiceServer).GetParticipation(ctx, req.(*GetParticipationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipationService_ListParticipations_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListParticipationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipationServiceServer).ListParticipations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParticipationService_ListParticipations_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ParticipationServiceServer).ListParticipations(ctx, req.(*ListParticipationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipationService_UpdateParticipation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateParticipationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipationServiceServer).UpdateParticipation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParticipationService_UpdateParticipation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ParticipationServiceServer).UpdateParticipation(ctx, req.(*UpdateParticipationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParticipationService_DeleteParticipation_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteParticipationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParticipationServiceServer).DeleteParticipation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParticipationService_DeleteParticipation_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ParticipationServiceServer).DeleteParticipation(ctx, req.(*DeleteParticipationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ParticipationService_ServiceDesc is the grpc.ServiceDesc for ParticipationService.
var ParticipationService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bandroom.v1.ParticipationService",
	HandlerType: (*ParticipationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateParticipation",
			Handler:    _ParticipationService_CreateParticipation_Handler,
		},
		{
			MethodName: "GetParticipation",
			Handler:    _ParticipationService_GetParticipation_Handler,
		},
		{
			MethodName: "ListParticipations",
			Handler:    _ParticipationService_ListParticipations_Handler,
		},
		{
			MethodName: "UpdateParticipation",
			Handler:    _ParticipationService_UpdateParticipation_Handler,
		},
		{
			MethodName: "DeleteParticipation",
			Handler:    _ParticipationService_DeleteParticipation_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/bandroom.proto",
}
