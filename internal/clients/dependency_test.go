package clients_test

import (
	"context"
	"io"
	"net"
	"testing"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/clients"
	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type stubDependencyServer struct {
	calls int
	value string
	err   error
}

func (s *stubDependencyServer) Get(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return wrapperspb.String(s.value), nil
}

func dialBufconn(t *testing.T, srv v1.DependencyServiceServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	v1.RegisterDependencyServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestStaticDependency_Get(t *testing.T) {
	dep := clients.NewStaticDependency("v1")
	for i := 0; i < 3; i++ {
		got, err := dep.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "v1", got)
	}
}

func TestGRPCDependency_Get(t *testing.T) {
	stub := &stubDependencyServer{value: "remote-v1"}
	conn := dialBufconn(t, stub)

	dep := clients.NewGRPCDependency(conn, log.NewStdLogger(io.Discard))
	got, err := dep.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "remote-v1", got)
	assert.Equal(t, 1, stub.calls)
}

func TestGRPCDependency_PropagatesStatus(t *testing.T) {
	stub := &stubDependencyServer{err: status.Error(codes.PermissionDenied, "nope")}
	conn := dialBufconn(t, stub)

	dep := clients.NewGRPCDependency(conn, log.NewStdLogger(io.Discard))
	_, err := dep.Get(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestGRPCDependency_NilConn(t *testing.T) {
	dep := clients.NewGRPCDependency(nil, log.NewStdLogger(io.Discard))
	_, err := dep.Get(context.Background())
	require.Error(t, err)
	assert.True(t, kerrors.IsServiceUnavailable(err))
}

func TestGreetingUsecase_WithRemoteDependency(t *testing.T) {
	conn := dialBufconn(t, &stubDependencyServer{value: "v1"})
	logger := log.NewStdLogger(io.Discard)

	uc := services.NewGreetingUsecase(clients.NewGRPCDependency(conn, logger), logger)
	got, err := uc.CallDependency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My dependency: v1", got)
}

func TestNewDependencyProvider(t *testing.T) {
	logger := log.NewStdLogger(io.Discard)

	t.Run("nil config", func(t *testing.T) {
		dep, err := clients.NewDependencyProvider(nil, nil, logger)
		require.NoError(t, err)
		got, err := dep.Get(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("static", func(t *testing.T) {
		dep, err := clients.NewDependencyProvider(&conf.Dependency{Mode: conf.DependencyModeStatic, Value: "lib"}, nil, logger)
		require.NoError(t, err)
		got, err := dep.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lib", got)
	})

	t.Run("grpc without connection", func(t *testing.T) {
		dep, err := clients.NewDependencyProvider(&conf.Dependency{Mode: conf.DependencyModeGRPC, Target: "x"}, nil, logger)
		require.NoError(t, err)
		_, err = dep.Get(context.Background())
		assert.True(t, kerrors.IsServiceUnavailable(err))
	})

	t.Run("grpc", func(t *testing.T) {
		conn := dialBufconn(t, &stubDependencyServer{value: "over-the-wire"})
		dep, err := clients.NewDependencyProvider(&conf.Dependency{Mode: conf.DependencyModeGRPC, Target: "x"}, conn, logger)
		require.NoError(t, err)
		got, err := dep.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "over-the-wire", got)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := clients.NewDependencyProvider(&conf.Dependency{Mode: "smoke-signal"}, nil, logger)
		require.Error(t, err)
	})
}

func TestNewPublishedDependency(t *testing.T) {
	published := clients.NewPublishedDependency(&conf.Dependency{Mode: conf.DependencyModeGRPC, Value: "served"})
	got, err := published.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "served", got)
}
