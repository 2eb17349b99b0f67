// Package main boots the Kratos gRPC + HTTP entrypoint for the greeting service.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"
	loginfra "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/logger"

	"github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"github.com/go-kratos/kratos/v2/transport/http"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Name=greeting -X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name string
	// Version is the version of the compiled software.
	Version string
)

func newApp(meta loader.ServiceMetadata, logger log.Logger, gs *grpc.Server, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(meta.InstanceID),
		kratos.Name(meta.Name),
		kratos.Version(meta.Version),
		kratos.Metadata(map[string]string{"environment": meta.Environment}),
		kratos.Logger(logger),
		kratos.Server(
			gs,
			hs,
		),
	)
}

func main() {
	// Parse command-line flags (currently only -conf).
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	confPath, err := loader.ParseConfPath(fs, os.Args[1:])
	if err != nil {
		panic(err)
	}

	// Load bootstrap configuration and derive service metadata.
	bundle, err := loader.Build(loader.Params{
		ConfPath:       confPath,
		ServiceName:    Name,
		ServiceVersion: Version,
	})
	if err != nil {
		panic(err)
	}
	meta := bundle.Service

	loggr, err := loginfra.NewLogger(meta.LoggerConfig())
	if err != nil {
		panic(err)
	}

	// Observability must be initialised before Wire builds the metric instruments.
	obsShutdown, err := observability.Init(context.Background(), bundle.ObsConfig,
		observability.WithLogger(loggr),
		observability.WithServiceName(meta.Name),
		observability.WithServiceVersion(meta.Version),
		observability.WithEnvironment(meta.Environment),
	)
	if err != nil {
		panic(err)
	}
	defer func() {
		if obsShutdown == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obsShutdown(ctx); err != nil {
			log.NewHelper(loggr).Warnf("shutdown observability: %v", err)
		}
	}()

	app, cleanupApp, err := wireApp(bundle, loggr)
	if err != nil {
		panic(err)
	}
	defer cleanupApp()

	// Start the application and block until a stop signal is received.
	if err := app.Run(); err != nil {
		panic(err)
	}
}
