package clients

import (
	"context"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// grpcDependency 是 services.DependencyProvider 的远程实现，调用另一实例的 DependencyService/Get。
type grpcDependency struct {
	client v1.DependencyServiceClient
	log    *log.Helper
}

// NewGRPCDependency 封装共享的 gRPC 连接。
// conn 为 nil 时返回的实现每次调用都报 ErrDependencyUnavailable。
func NewGRPCDependency(conn grpc.ClientConnInterface, logger log.Logger) services.DependencyProvider {
	helper := log.NewHelper(logger)
	if conn == nil {
		helper.Warn("no grpc client connection; remote dependency disabled")
		return &grpcDependency{log: helper}
	}
	return &grpcDependency{
		client: v1.NewDependencyServiceClient(conn),
		log:    helper,
	}
}

// Get 调用远程 DependencyService/Get，RPC 错误原样返回。
func (r *grpcDependency) Get(ctx context.Context) (string, error) {
	if r.client == nil {
		r.log.WithContext(ctx).Warn("remote dependency client not initialized")
		return "", services.ErrDependencyUnavailable
	}
	reply, err := r.client.Get(ctx, &emptypb.Empty{})
	if err != nil {
		return "", err
	}
	return reply.GetValue(), nil
}
