//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/bionicotaku/lingo-services-greeting/internal/clients"
	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"
	grpcclient "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/grpc_client"
	grpcserver "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/grpc_server"
	httpserver "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/telemetry"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*loader.Bundle, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		loader.ProviderSet,
		telemetry.ProviderSet,
		grpcserver.ProviderSet,
		httpserver.ProviderSet,
		grpcclient.ProviderSet,
		clients.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		newApp,
	))
}
