// Package logger 构建服务统一的 Kratos logger。
//
// 每条日志都带上 trace_id / span_id（OTel）以及 request_id（internal/metadata），
// 便于把一次 CallDependency 在多个实例间的日志串起来。
package logger

import (
	"context"
	"strings"

	reqmeta "github.com/bionicotaku/lingo-services-greeting/internal/metadata"

	gclog "github.com/bionicotaku/lingo-utils/gclog"
	"github.com/go-kratos/kratos/v2/log"
	"go.opentelemetry.io/otel/trace"
)

// Config 描述日志注解所需的实例元信息。
type Config struct {
	Service    string
	Version    string
	InstanceID string
	Env        string
	// Level 为最低输出级别（debug/info/warn/error），空值表示不过滤。
	Level string
}

// NewLogger 基于 gclog 构建 logger，并附加链路与请求字段。
func NewLogger(cfg Config) (log.Logger, error) {
	base, err := gclog.NewLogger(
		gclog.WithService(cfg.Service),
		gclog.WithVersion(cfg.Version),
		gclog.WithEnvironment(cfg.Env),
		gclog.WithStaticLabels(map[string]string{"service.id": cfg.InstanceID}),
		gclog.EnableSourceLocation(),
	)
	if err != nil {
		return nil, err
	}
	return withLevel(Enrich(base), cfg.Level), nil
}

// Enrich 追加 trace_id、span_id、request_id 三个按请求上下文求值的字段。
func Enrich(logger log.Logger) log.Logger {
	return log.With(logger,
		"trace_id", traceID(),
		"span_id", spanID(),
		"request_id", requestID(),
	)
}

func withLevel(logger log.Logger, level string) log.Logger {
	if strings.TrimSpace(level) == "" {
		return logger
	}
	return log.NewFilter(logger, log.FilterLevel(log.ParseLevel(strings.ToUpper(strings.TrimSpace(level)))))
}

func traceID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			return sc.TraceID().String()
		}
		return ""
	}
}

func spanID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if sc := trace.SpanContextFromContext(ctx); sc.HasSpanID() {
			return sc.SpanID().String()
		}
		return ""
	}
}

func requestID() log.Valuer {
	return func(ctx context.Context) interface{} {
		if meta, ok := reqmeta.FromContext(ctx); ok {
			return meta.RequestID
		}
		return ""
	}
}
