package telemetry

import (
	"context"
	"testing"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"

	"github.com/go-kratos/kratos/v2/errors"
	kmetrics "github.com/go-kratos/kratos/v2/middleware/metrics"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func installTestMeterProvider(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		_ = provider.Shutdown(context.Background())
	})
	return reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestServerMetrics_RecordsRequests(t *testing.T) {
	reader := installTestMeterProvider(t)

	m, err := NewServerMetrics(loader.ServiceMetadata{Name: "greeting-test"})
	require.NoError(t, err)

	ok := m.Middleware()(func(context.Context, interface{}) (interface{}, error) {
		return "Hello World", nil
	})
	notFound := m.Middleware()(func(context.Context, interface{}) (interface{}, error) {
		return nil, errors.NotFound(v1.ErrorReason_GREETING_NOT_FOUND.String(), "greeting not found")
	})

	out, err := ok(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "Hello World", out)
	_, err = ok(context.Background(), nil)
	require.NoError(t, err)
	_, err = notFound(context.Background(), nil)
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counter, found := findMetric(rm, kmetrics.DefaultServerRequestsCounterName)
	require.True(t, found, "request counter not exported")
	sum, isSum := counter.Data.(metricdata.Sum[int64])
	require.True(t, isSum, "unexpected counter data %T", counter.Data)

	var total, notFoundCount int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
		if reason, has := dp.Attributes.Value(attribute.Key("reason")); has && reason.AsString() == v1.ErrorReason_GREETING_NOT_FOUND.String() {
			notFoundCount += dp.Value
		}
	}
	require.Equal(t, int64(3), total)
	require.Equal(t, int64(1), notFoundCount)

	histogram, found := findMetric(rm, kmetrics.DefaultServerSecondsHistogramName)
	require.True(t, found, "latency histogram not exported")
	hist, isHist := histogram.Data.(metricdata.Histogram[float64])
	require.True(t, isHist, "unexpected histogram data %T", histogram.Data)
	var count uint64
	for _, dp := range hist.DataPoints {
		count += dp.Count
	}
	require.Equal(t, uint64(3), count)
}

func TestServerMetrics_NilPassThrough(t *testing.T) {
	var m *ServerMetrics
	h := m.Middleware()(func(context.Context, interface{}) (interface{}, error) {
		return 42, nil
	})
	out, err := h(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 42, out)
}
