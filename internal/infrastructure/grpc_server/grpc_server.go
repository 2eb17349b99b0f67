// Package grpcserver wires the inbound gRPC server and its middleware stack.
package grpcserver

import (
	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/telemetry"
	reqmeta "github.com/bionicotaku/lingo-services-greeting/internal/metadata"

	"github.com/bionicotaku/lingo-utils/observability"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	otelgrpcfilters "go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc/filters"
	"go.opentelemetry.io/otel"
	stdgrpc "google.golang.org/grpc"
	"google.golang.org/grpc/stats"
)

// NewGRPCServer new a gRPC server serving GreetingService and DependencyService.
func NewGRPCServer(c *conf.Server, metricsCfg *observability.MetricsConfig, m *telemetry.ServerMetrics, greeting *controllers.GreetingHandler, dependency *controllers.DependencyHandler, logger log.Logger) *grpc.Server {
	// metricsCfg is optional; default to enabled otelgrpc instrumentation.
	metricsEnabled := true
	includeHealth := false
	if metricsCfg != nil {
		metricsEnabled = metricsCfg.GRPCEnabled
		includeHealth = metricsCfg.GRPCIncludeHealth
	}

	opts := []grpc.ServerOption{
		grpc.Middleware(
			obsTrace.Server(),
			recovery.Recovery(),
			metadata.Server(
				metadata.WithPropagatedPrefix(reqmeta.PropagatedPrefix),
			),
			reqmeta.Server(),
			ratelimit.Server(),
			m.Middleware(),
			logging.Server(logger),
		),
	}
	if metricsEnabled {
		opts = append(opts, grpc.Options(stdgrpc.StatsHandler(newServerHandler(includeHealth))))
	}
	if l := c.GetGrpc(); l != nil {
		if l.Network != "" {
			opts = append(opts, grpc.Network(l.Network))
		}
		if l.Addr != "" {
			opts = append(opts, grpc.Address(l.Addr))
		}
		if l.Timeout != 0 {
			opts = append(opts, grpc.Timeout(l.Timeout.AsDuration()))
		}
	}
	srv := grpc.NewServer(opts...)
	v1.RegisterGreetingServiceServer(srv, greeting)
	v1.RegisterDependencyServiceServer(srv, dependency)
	return srv
}

func newServerHandler(includeHealth bool) stats.Handler {
	opts := []otelgrpc.Option{
		otelgrpc.WithMeterProvider(otel.GetMeterProvider()),
	}
	if !includeHealth {
		opts = append(opts, otelgrpc.WithFilter(otelgrpcfilters.Not(otelgrpcfilters.HealthCheck())))
	}
	return otelgrpc.NewServerHandler(opts...)
}
