// Package v1 declares the greeting.v1 gRPC services.
//
// The services use well-known protobuf messages only (Empty and StringValue), so the
// descriptors are declared by hand instead of generated from a .proto file; Metadata
// therefore names this file.
package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	GreetingServiceName   = "greeting.v1.GreetingService"
	DependencyServiceName = "greeting.v1.DependencyService"
)

const (
	GreetingService_Say_FullMethodName            = "/greeting.v1.GreetingService/Say"
	GreetingService_Bye_FullMethodName            = "/greeting.v1.GreetingService/Bye"
	GreetingService_GoodMorning_FullMethodName    = "/greeting.v1.GreetingService/GoodMorning"
	GreetingService_GoodAfternoon_FullMethodName  = "/greeting.v1.GreetingService/GoodAfternoon"
	GreetingService_GoodEvening_FullMethodName    = "/greeting.v1.GreetingService/GoodEvening"
	GreetingService_GoodNight_FullMethodName      = "/greeting.v1.GreetingService/GoodNight"
	GreetingService_CallDependency_FullMethodName = "/greeting.v1.GreetingService/CallDependency"
	GreetingService_Greet_FullMethodName          = "/greeting.v1.GreetingService/Greet"
	DependencyService_Get_FullMethodName          = "/greeting.v1.DependencyService/Get"
)

// GreetingServiceServer is the server API for greeting.v1.GreetingService.
type GreetingServiceServer interface {
	Say(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	Bye(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GoodMorning(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GoodAfternoon(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GoodEvening(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GoodNight(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	CallDependency(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	// Greet returns the greeting whose kind is carried in the request value.
	Greet(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// DependencyServiceServer is the server API for greeting.v1.DependencyService.
type DependencyServiceServer interface {
	Get(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// RegisterGreetingServiceServer registers srv on s.
func RegisterGreetingServiceServer(s grpc.ServiceRegistrar, srv GreetingServiceServer) {
	s.RegisterService(&GreetingService_ServiceDesc, srv)
}

// RegisterDependencyServiceServer registers srv on s.
func RegisterDependencyServiceServer(s grpc.ServiceRegistrar, srv DependencyServiceServer) {
	s.RegisterService(&DependencyService_ServiceDesc, srv)
}

// GreetingService_ServiceDesc is the grpc.ServiceDesc for greeting.v1.GreetingService.
var GreetingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GreetingServiceName,
	HandlerType: (*GreetingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Say", Handler: emptyHandler(GreetingService_Say_FullMethodName, GreetingServiceServer.Say)},
		{MethodName: "Bye", Handler: emptyHandler(GreetingService_Bye_FullMethodName, GreetingServiceServer.Bye)},
		{MethodName: "GoodMorning", Handler: emptyHandler(GreetingService_GoodMorning_FullMethodName, GreetingServiceServer.GoodMorning)},
		{MethodName: "GoodAfternoon", Handler: emptyHandler(GreetingService_GoodAfternoon_FullMethodName, GreetingServiceServer.GoodAfternoon)},
		{MethodName: "GoodEvening", Handler: emptyHandler(GreetingService_GoodEvening_FullMethodName, GreetingServiceServer.GoodEvening)},
		{MethodName: "GoodNight", Handler: emptyHandler(GreetingService_GoodNight_FullMethodName, GreetingServiceServer.GoodNight)},
		{MethodName: "CallDependency", Handler: emptyHandler(GreetingService_CallDependency_FullMethodName, GreetingServiceServer.CallDependency)},
		{MethodName: "Greet", Handler: _GreetingService_Greet_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/greeting/v1/greeting_grpc.go",
}

// DependencyService_ServiceDesc is the grpc.ServiceDesc for greeting.v1.DependencyService.
var DependencyService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: DependencyServiceName,
	HandlerType: (*DependencyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Get", Handler: _DependencyService_Get_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/greeting/v1/greeting_grpc.go",
}

// emptyHandler adapts a GreetingServiceServer method taking Empty to a grpc.MethodHandler.
func emptyHandler(fullMethod string, call func(GreetingServiceServer, context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(emptypb.Empty)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GreetingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GreetingServiceServer), ctx, req.(*emptypb.Empty))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func _GreetingService_Greet_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GreetingServiceServer).Greet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GreetingService_Greet_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GreetingServiceServer).Greet(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _DependencyService_Get_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DependencyServiceServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DependencyService_Get_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DependencyServiceServer).Get(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// DependencyServiceClient is the client API for greeting.v1.DependencyService.
type DependencyServiceClient interface {
	Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type dependencyServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewDependencyServiceClient wraps cc with the DependencyService client API.
func NewDependencyServiceClient(cc grpc.ClientConnInterface) DependencyServiceClient {
	return &dependencyServiceClient{cc}
}

func (c *dependencyServiceClient) Get(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, DependencyService_Get_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GreetingServiceClient is the client API for greeting.v1.GreetingService.
type GreetingServiceClient interface {
	Say(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Bye(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GoodMorning(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GoodAfternoon(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GoodEvening(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GoodNight(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	CallDependency(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Greet(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type greetingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGreetingServiceClient wraps cc with the GreetingService client API.
func NewGreetingServiceClient(cc grpc.ClientConnInterface) GreetingServiceClient {
	return &greetingServiceClient{cc}
}

func (c *greetingServiceClient) invokeEmpty(ctx context.Context, method string, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *greetingServiceClient) Say(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_Say_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) Bye(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_Bye_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) GoodMorning(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_GoodMorning_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) GoodAfternoon(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_GoodAfternoon_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) GoodEvening(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_GoodEvening_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) GoodNight(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_GoodNight_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) CallDependency(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invokeEmpty(ctx, GreetingService_CallDependency_FullMethodName, in, opts...)
}

func (c *greetingServiceClient) Greet(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, GreetingService_Greet_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
