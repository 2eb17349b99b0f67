// Package telemetry prepares the request metric instruments shared by the inbound servers.
package telemetry

import (
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"

	"github.com/go-kratos/kratos/v2/middleware"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/google/wire"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ProviderSet exposes the server metrics for Wire.
var ProviderSet = wire.NewSet(NewServerMetrics)

// ServerMetrics bundles the Kratos request counter and latency histogram.
type ServerMetrics struct {
	RequestCounter   metric.Int64Counter
	SecondsHistogram metric.Float64Histogram
}

// NewServerMetrics creates the instruments on the global meter provider, which
// observability.Init replaces when metrics export is enabled.
func NewServerMetrics(meta loader.ServiceMetadata) (*ServerMetrics, error) {
	name := meta.Name
	if name == "" {
		name = "greeting"
	}
	meter := otel.GetMeterProvider().Meter(name)

	requestCounter, err := kmetrics.DefaultRequestsCounter(meter, kmetrics.DefaultServerRequestsCounterName)
	if err != nil {
		return nil, err
	}
	secondsHistogram, err := kmetrics.DefaultSecondsHistogram(meter, kmetrics.DefaultServerSecondsHistogramName)
	if err != nil {
		return nil, err
	}
	return &ServerMetrics{
		RequestCounter:   requestCounter,
		SecondsHistogram: secondsHistogram,
	}, nil
}

// Middleware returns the Kratos server metrics middleware; nil receivers yield a pass-through.
func (m *ServerMetrics) Middleware() middleware.Middleware {
	if m == nil {
		return func(h middleware.Handler) middleware.Handler { return h }
	}
	return kmetrics.Server(
		kmetrics.WithRequests(m.RequestCounter),
		kmetrics.WithSeconds(m.SecondsHistogram),
	)
}
