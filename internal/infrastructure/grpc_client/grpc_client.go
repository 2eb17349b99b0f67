// Package grpcclient configures the outbound gRPC connection to a remote Dependency Provider.
package grpcclient

import (
	"context"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	reqmeta "github.com/bionicotaku/lingo-services-greeting/internal/metadata"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/circuitbreaker"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	kgrpc "github.com/go-kratos/kratos/v2/transport/grpc"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelgrpcfilters "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc/filters"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/stats"
)

// NewGRPCClient dials dependency.target when the dependency runs in grpc mode.
// Any other mode yields a nil connection and a no-op cleanup.
func NewGRPCClient(c *conf.Dependency, metricsCfg *observability.MetricsConfig, logger log.Logger) (*grpc.ClientConn, func(), error) {
	helper := log.NewHelper(logger)

	if c == nil || c.Mode != conf.DependencyModeGRPC || c.Target == "" {
		helper.Info("dependency runs in-process; no grpc client dialed")
		return nil, func() {}, nil
	}

	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	opts := []kgrpc.ClientOption{
		kgrpc.WithEndpoint(c.Target),
		kgrpc.WithMiddleware(
			recovery.Recovery(),
			// 转发 reqmeta.Server 写入 server metadata 的 x-greeting-* 键（含 request id）。
			metadata.Client(metadata.WithPropagatedPrefix(reqmeta.PropagatedPrefix)),
			obsTrace.Client(),
			circuitbreaker.Client(),
		),
	}
	if c.Timeout != 0 {
		opts = append(opts, kgrpc.WithTimeout(c.Timeout.AsDuration()))
	}
	if metricsEnabled {
		opts = append(opts, kgrpc.WithOptions(grpc.WithStatsHandler(newClientHandler(includeHealth))))
	}

	conn, err := kgrpc.DialInsecure(context.Background(), opts...)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			helper.Errorf("close grpc client: %v", err)
		}
	}
	return conn, cleanup, nil
}

func newClientHandler(includeHealth bool) stats.Handler {
	opts := []otelgrpc.Option{
		otelgrpc.WithMeterProvider(otel.GetMeterProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelgrpc.WithFilter(otelgrpcfilters.Not(otelgrpcfilters.HealthCheck())))
	}
	return otelgrpc.NewClientHandler(opts...)
}
