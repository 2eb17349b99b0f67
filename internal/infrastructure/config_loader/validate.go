package loader

import (
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
)

// validate 校验覆盖与默认值处理后的配置。
func validate(bc *conf.Bootstrap) error {
	var errs []error

	server := bc.GetServer()
	if server.GetGrpc() == nil && server.GetHttp() == nil {
		errs = append(errs, errors.New("server: at least one of grpc or http must be configured"))
	}
	listeners := []struct {
		name string
		l    *conf.Server_Listener
	}{{"grpc", server.GetGrpc()}, {"http", server.GetHttp()}}
	for _, item := range listeners {
		name, l := item.name, item.l
		if l == nil {
			continue
		}
		if l.Addr == "" {
			errs = append(errs, fmt.Errorf("server.%s.addr: must not be empty", name))
		}
		if l.Timeout < 0 {
			errs = append(errs, fmt.Errorf("server.%s.timeout: must not be negative", name))
		}
	}

	dep := bc.GetDependency()
	switch dep.Mode {
	case conf.DependencyModeStatic:
	case conf.DependencyModeGRPC:
		if dep.Target == "" {
			errs = append(errs, errors.New("dependency.target: required when mode is grpc"))
		}
	default:
		errs = append(errs, fmt.Errorf("dependency.mode: unsupported value %q", dep.Mode))
	}
	if dep.Timeout < 0 {
		errs = append(errs, errors.New("dependency.timeout: must not be negative"))
	}

	if tr := bc.GetObservability().GetTracing(); tr != nil {
		if tr.SamplingRatio < 0 || tr.SamplingRatio > 1 {
			errs = append(errs, fmt.Errorf("observability.tracing.sampling_ratio: %v not in [0, 1]", tr.SamplingRatio))
		}
	}
	return errors.Join(errs...)
}
