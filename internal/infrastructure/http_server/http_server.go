// Package httpserver wires the inbound HTTP/JSON server.
package httpserver

import (
	stdhttp "net/http"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"
	"github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/telemetry"
	reqmeta "github.com/bionicotaku/lingo-services-greeting/internal/metadata"

	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/wire"
)

// ProviderSet bundles the HTTP server provider for Wire.
var ProviderSet = wire.NewSet(NewHTTPServer)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, m *telemetry.ServerMetrics, greeting *controllers.GreetingHandler, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			obsTrace.Server(),
			recovery.Recovery(),
			metadata.Server(
				metadata.WithPropagatedPrefix(reqmeta.PropagatedPrefix),
			),
			reqmeta.Server(),
			m.Middleware(),
			logging.Server(logger),
		),
	}
	if l := c.GetHttp(); l != nil {
		if l.Network != "" {
			opts = append(opts, http.Network(l.Network))
		}
		if l.Addr != "" {
			opts = append(opts, http.Address(l.Addr))
		}
		if l.Timeout != 0 {
			opts = append(opts, http.Timeout(l.Timeout.AsDuration()))
		}
	}

	srv := http.NewServer(opts...)

	srv.Handle("/healthz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))
	srv.Handle("/readyz", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
	}))

	v1.RegisterGreetingHTTPServer(srv, greeting)
	return srv
}
