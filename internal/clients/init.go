package clients

import (
	"fmt"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"google.golang.org/grpc"
)

// ProviderSet bundles Dependency Provider constructors for Wire.
var ProviderSet = wire.NewSet(NewDependencyProvider, NewPublishedDependency)

// NewDependencyProvider selects the Dependency Provider for dependency.mode.
func NewDependencyProvider(c *conf.Dependency, conn *grpc.ClientConn, logger log.Logger) (services.DependencyProvider, error) {
	if c == nil {
		return NewStaticDependency(""), nil
	}
	switch c.Mode {
	case "", conf.DependencyModeStatic:
		return NewStaticDependency(c.Value), nil
	case conf.DependencyModeGRPC:
		// A nil *grpc.ClientConn must not be boxed into the interface parameter.
		if conn == nil {
			return NewGRPCDependency(nil, logger), nil
		}
		return NewGRPCDependency(conn, logger), nil
	default:
		return nil, fmt.Errorf("unsupported dependency mode %q", c.Mode)
	}
}

// NewPublishedDependency exposes dependency.value on DependencyService/Get regardless of mode.
func NewPublishedDependency(c *conf.Dependency) services.PublishedDependency {
	if c == nil {
		return NewStaticDependency("")
	}
	return NewStaticDependency(c.Value)
}
