package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	ConcertService_CreateConcert_FullMethodName = "/bandroom.v1.ConcertService/CreateConcert"
	ConcertService_GetConcert_FullMethodName    = "/bandroom.v1.ConcertService/GetConcert"
	ConcertService_ListConcerts_FullMethodName  = "/bandroom.v1.ConcertService/ListConcerts"
	ConcertService_UpdateConcert_FullMethodName = "/bandroom.v1.ConcertService/UpdateConcert"
	ConcertService_DeleteConcert_FullMethodName = "/bandroom.v1.ConcertService/DeleteConcert"
)

// ConcertServiceClient is the client API for ConcertService.
type ConcertServiceClient interface {
	CreateConcert(ctx context.Context, in *CreateConcertRequest, opts ...grpc.CallOption) (*Concert, error)
	GetConcert(ctx context.Context, in *GetConcertRequest, opts ...grpc.CallOption) (*Concert, error)
	ListConcerts(ctx context.Context, in *ListConcertsRequest, opts ...grpc.CallOption) (*ListConcertsResponse, error)
	UpdateConcert(ctx context.Context, in *UpdateConcertRequest, opts ...grpc.CallOption) (*Concert, error)
	DeleteConcert(ctx context.Context, in *DeleteConcertRequest, opts ...grpc.CallOption) (*Empty, error)
}

type concertServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewConcertServiceClient(cc grpc.ClientConnInterface) ConcertServiceClient {
	return &concertServiceClient{cc}
}

func (c *concertServiceClient) CreateConcert(ctx context.Context, in *CreateConcertRequest, opts ...grpc.CallOption) (*Concert, error) {
	out := new(Concert)
	if err := c.cc.Invoke(ctx, ConcertService_CreateConcert_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *concertServiceClient) GetConcert(ctx context.Context, in *GetConcertRequest, opts ...grpc.CallOption) (*Concert, error) {
	out := new(Concert)
	if err := c.cc.Invoke(ctx, ConcertService_GetConcert_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *concertServiceClient) ListConcerts(ctx context.Context, in *ListConcertsRequest, opts ...grpc.CallOption) (*ListConcertsResponse, error) {
	out := new(ListConcertsResponse)
	if err := c.cc.Invoke(ctx, ConcertService_ListConcerts_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *concertServiceClient) UpdateConcert(ctx context.Context, in *UpdateConcertRequest, opts ...grpc.CallOption) (*Concert, error) {
	out := new(Concert)
	if err := c.cc.Invoke(ctx, ConcertService_UpdateConcert_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *concertServiceClient) DeleteConcert(ctx context.Context, in *DeleteConcertRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, ConcertService_DeleteConcert_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// ConcertServiceServer is the server API for ConcertService.
type ConcertServiceServer interface {
	CreateConcert(context.Context, *CreateConcertRequest) (*Concert, error)
	GetConcert(context.Context, *GetConcertRequest) (*Concert, error)
	ListConcerts(context.Context, *ListConcertsRequest) (*ListConcertsResponse, error)
	UpdateConcert(context.Context, *UpdateConcertRequest) (*Concert, error)
	DeleteConcert(context.Context, *DeleteConcertRequest) (*Empty, error)
}

func RegisterConcertServiceServer(s grpc.ServiceRegistrar, srv ConcertServiceServer) {
	s.RegisterService(&ConcertService_ServiceDesc, srv)
}

func _ConcertService_CreateConcert_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateConcertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConcertServiceServer).CreateConcert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConcertService_CreateConcert_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConcertServiceServer).CreateConcert(ctx, req.(*CreateConcertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConcertService_GetConcert_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetConcertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConcertServiceServer).GetConcert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConcertService_GetConcert_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConcertServiceServer).GetConcert(ctx, req.(*GetConcertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConcertService_ListConcerts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListConcertsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConcertServiceServer).ListConcerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConcertService_ListConcerts_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConcertServiceServer).ListConcerts(ctx, req.(*ListConcertsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConcertService_UpdateConcert_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateConcertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConcertServiceServer).UpdateConcert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConcertService_UpdateConcert_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConcertServiceServer).UpdateConcert(ctx, req.(*UpdateConcertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ConcertService_DeleteConcert_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteConcertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ConcertServiceServer).DeleteConcert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ConcertService_DeleteConcert_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ConcertServiceServer).DeleteConcert(ctx, req.(*DeleteConcertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ConcertService_ServiceDesc is the grpc.ServiceDesc for ConcertService.
var ConcertService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bandroom.v1.ConcertService",
	HandlerType: (*ConcertServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateConcert",
			Handler:    _ConcertService_CreateConcert_Handler,
		},
		{
			MethodName: "GetConcert",
			Handler:    _ConcertService_GetConcert_Handler,
		},
		{
			MethodName: "ListConcerts",
			Handler:    _ConcertService_ListConcerts_Handler,
		},
		{
			MethodName: "UpdateConcert",
			Handler:    _ConcertService_UpdateConcert_Handler,
		},
		{
			MethodName: "DeleteConcert",
			Handler:    _ConcertService_DeleteConcert_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/bandroom.proto",
}
