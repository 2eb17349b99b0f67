package loader

import "time"

const (
	// defaultConfPath is the fallback configuration directory when no overrides are provided.
	defaultConfPath = "configs"
	// defaultServiceName is used when neither Params nor SERVICE_NAME provide one.
	defaultServiceName = "greeting"
	// defaultServiceVersion is used when neither Params nor SERVICE_VERSION provide one.
	defaultServiceVersion = "dev"
	// defaultEnvironment is used when APP_ENV is missing.
	defaultEnvironment = "development"
	// defaultInstanceID is the last resort when hostname and uuid both fail.
	defaultInstanceID = "unknown-instance"
	// defaultDependencyTimeout bounds remote Dependency Provider calls.
	defaultDependencyTimeout = 2 * time.Second
	// defaultGRPCMetricsEnabled toggles otelgrpc instrumentation when config omits explicit values.
	defaultGRPCMetricsEnabled = true
	// defaultGRPCIncludeHealth controls whether health check RPCs are exported by default.
	defaultGRPCIncludeHealth = false
)
