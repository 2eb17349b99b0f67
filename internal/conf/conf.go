// Package conf declares the bootstrap configuration scanned from configs/*.yaml.
package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Dependency modes.
const (
	DependencyModeStatic = "static"
	DependencyModeGRPC   = "grpc"
)

// Bootstrap is the root of the configuration tree.
type Bootstrap struct {
	Server        *Server        `json:"server"`
	Dependency    *Dependency    `json:"dependency"`
	Observability *Observability `json:"observability"`
}

// Server groups the inbound listeners.
type Server struct {
	Grpc *Server_Listener `json:"grpc"`
	Http *Server_Listener `json:"http"`
}

// Server_Listener describes one listener.
type Server_Listener struct {
	Network string   `json:"network"`
	Addr    string   `json:"addr"`
	Timeout Duration `json:"timeout"`
}

// Dependency configures the Dependency Provider consulted by CallDependency.
type Dependency struct {
	// Mode is "static" or "grpc".
	Mode string `json:"mode"`
	// Value is returned in static mode and published on DependencyService/Get.
	Value string `json:"value"`
	// Target is the gRPC endpoint of another instance, required in grpc mode.
	Target  string   `json:"target"`
	Timeout Duration `json:"timeout"`
}

// Observability mirrors lingo-utils/observability settings.
type Observability struct {
	GlobalAttributes map[string]string      `json:"global_attributes"`
	Tracing          *Observability_Tracing `json:"tracing"`
	Metrics          *Observability_Metrics `json:"metrics"`
}

type Observability_Tracing struct {
	Enabled       bool              `json:"enabled"`
	Exporter      string            `json:"exporter"`
	Endpoint      string            `json:"endpoint"`
	Headers       map[string]string `json:"headers"`
	Insecure      bool              `json:"insecure"`
	SamplingRatio float64           `json:"sampling_ratio"`
	BatchTimeout  Duration          `json:"batch_timeout"`
	ExportTimeout Duration          `json:"export_timeout"`
	Required      bool              `json:"required"`
}

type Observability_Metrics struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            Duration          `json:"interval"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	GrpcEnabled         *bool             `json:"grpc_enabled"`
	GrpcIncludeHealth   *bool             `json:"grpc_include_health"`
}

func (b *Bootstrap) GetServer() *Server {
	if b == nil {
		return nil
	}
	return b.Server
}

func (b *Bootstrap) GetDependency() *Dependency {
	if b == nil {
		return nil
	}
	return b.Dependency
}

func (b *Bootstrap) GetObservability() *Observability {
	if b == nil {
		return nil
	}
	return b.Observability
}

func (s *Server) GetGrpc() *Server_Listener {
	if s == nil {
		return nil
	}
	return s.Grpc
}

func (s *Server) GetHttp() *Server_Listener {
	if s == nil {
		return nil
	}
	return s.Http
}

// Duration accepts "1.5s"-style strings or integer nanoseconds.
type Duration time.Duration

// AsDuration returns d as a time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		if v == "" {
			*d = 0
			return nil
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (o *Observability) GetTracing() *Observability_Tracing {
	if o == nil {
		return nil
	}
	return o.Tracing
}

func (o *Observability) GetMetrics() *Observability_Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}
