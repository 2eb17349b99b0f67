package loader

import (
	"github.com/bionicotaku/lingo-services-greeting/internal/conf"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/google/wire"
)

// ProviderSet exposes configuration-derived dependencies for Wire graphs.
// The *Bundle itself is an injector argument: main needs it before Wire runs.
var ProviderSet = wire.NewSet(
	ProvideServiceMetadata,
	ProvideBootstrap,
	ProvideServerConfig,
	ProvideDependencyConfig,
	ProvideMetricsConfig,
)

// ProvideServiceMetadata returns the resolved ServiceMetadata from the bundle.
func ProvideServiceMetadata(b *Bundle) ServiceMetadata {
	if b == nil {
		return ServiceMetadata{}
	}
	return b.Service
}

// ProvideBootstrap exposes the strongly typed bootstrap configuration.
func ProvideBootstrap(b *Bundle) *conf.Bootstrap {
	if b == nil {
		return nil
	}
	return b.Bootstrap
}

// ProvideServerConfig returns the server section of the bootstrap configuration.
func ProvideServerConfig(bc *conf.Bootstrap) *conf.Server {
	return bc.GetServer()
}

// ProvideDependencyConfig returns the dependency section of the bootstrap configuration.
func ProvideDependencyConfig(bc *conf.Bootstrap) *conf.Dependency {
	return bc.GetDependency()
}

// ProvideMetricsConfig exposes the normalized metrics configuration; nil when omitted.
func ProvideMetricsConfig(b *Bundle) *obswire.MetricsConfig {
	if b == nil {
		return nil
	}
	return b.ObsConfig.Metrics
}
