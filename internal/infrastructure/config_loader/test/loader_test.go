// Package loader_test 提供 config_loader 包的黑盒测试。
package loader_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
server:
  grpc:
    addr: 0.0.0.0:9000
  http:
    addr: 0.0.0.0:8000
`

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func buildFrom(t *testing.T, content string) (*loader.Bundle, error) {
	t.Helper()
	dir := t.TempDir()
	writeConfigFile(t, dir, content)
	return loader.Build(loader.Params{ConfPath: dir})
}

func TestResolveConfPath(t *testing.T) {
	t.Setenv("CONF_PATH", "/env/config")
	assert.Equal(t, "/custom/config", loader.ResolveConfPath("/custom/config"))
	assert.Equal(t, "/env/config", loader.ResolveConfPath(""))

	t.Setenv("CONF_PATH", "")
	assert.Equal(t, "configs", loader.ResolveConfPath(""))
}

func TestParseConfPath(t *testing.T) {
	t.Setenv("CONF_PATH", "")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	got, err := loader.ParseConfPath(fs, []string{"-conf", "/etc/greeting"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/greeting", got)

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	got, err = loader.ParseConfPath(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "configs", got)
}

func TestBuild_ValidConfig(t *testing.T) {
	bundle, err := buildFrom(t, `
server:
  grpc:
    network: tcp
    addr: 0.0.0.0:9000
    timeout: 1s
  http:
    addr: 0.0.0.0:8000
    timeout: 500ms
dependency:
  mode: grpc
  target: "dns:///upstream:9000"
  value: "v1"
  timeout: 3s
observability:
  global_attributes:
    env: test
  tracing:
    enabled: true
    exporter: stdout
    sampling_ratio: 0.5
  metrics:
    enabled: true
    exporter: stdout
    interval: 60s
    grpc_include_health: true
`)
	require.NoError(t, err)

	bc := bundle.Bootstrap
	assert.Equal(t, "tcp", bc.GetServer().GetGrpc().Network)
	assert.Equal(t, time.Second, bc.GetServer().GetGrpc().Timeout.AsDuration())
	assert.Equal(t, 500*time.Millisecond, bc.GetServer().GetHttp().Timeout.AsDuration())

	dep := bc.GetDependency()
	assert.Equal(t, conf.DependencyModeGRPC, dep.Mode)
	assert.Equal(t, "dns:///upstream:9000", dep.Target)
	assert.Equal(t, "v1", dep.Value)
	assert.Equal(t, 3*time.Second, dep.Timeout.AsDuration())

	require.NotNil(t, bundle.ObsConfig.Tracing)
	assert.True(t, bundle.ObsConfig.Tracing.Enabled)
	assert.InDelta(t, 0.5, bundle.ObsConfig.Tracing.SamplingRatio, 1e-9)
	assert.Equal(t, map[string]string{"env": "test"}, bundle.ObsConfig.GlobalAttributes)

	require.NotNil(t, bundle.ObsConfig.Metrics)
	assert.Equal(t, time.Minute, bundle.ObsConfig.Metrics.Interval)
	assert.True(t, bundle.ObsConfig.Metrics.GRPCEnabled)
	assert.True(t, bundle.ObsConfig.Metrics.GRPCIncludeHealth)
}

func TestBuild_DependencyDefaults(t *testing.T) {
	bundle, err := buildFrom(t, minimalConfig)
	require.NoError(t, err)

	dep := bundle.Bootstrap.GetDependency()
	require.NotNil(t, dep)
	assert.Equal(t, conf.DependencyModeStatic, dep.Mode)
	assert.Equal(t, 2*time.Second, dep.Timeout.AsDuration())
	assert.Nil(t, bundle.ObsConfig.Metrics)
}

func TestBuild_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("DEPENDENCY_TARGET", "dns:///other:9000")
	t.Setenv("DEPENDENCY_VALUE", "from-env")

	bundle, err := buildFrom(t, minimalConfig+`
dependency:
  mode: static
  value: from-file
`)
	require.NoError(t, err)

	bc := bundle.Bootstrap
	assert.Equal(t, "0.0.0.0:8080", bc.GetServer().GetHttp().Addr)
	assert.Equal(t, "0.0.0.0:9090", bc.GetServer().GetGrpc().Addr)
	assert.Equal(t, "dns:///other:9000", bc.GetDependency().Target)
	assert.Equal(t, "from-env", bc.GetDependency().Value)
}

func TestBuild_EnvOverridesWithoutDependencySection(t *testing.T) {
	t.Setenv("DEPENDENCY_VALUE", "from-env")
	t.Setenv("DEPENDENCY_TARGET", "dns:///other:9000")

	bundle, err := buildFrom(t, minimalConfig)
	require.NoError(t, err)

	dep := bundle.Bootstrap.GetDependency()
	require.NotNil(t, dep)
	assert.Equal(t, conf.DependencyModeStatic, dep.Mode)
	assert.Equal(t, "from-env", dep.Value)
	assert.Equal(t, "dns:///other:9000", dep.Target)
	assert.Equal(t, 2*time.Second, dep.Timeout.AsDuration())
}

func TestBuild_DependencyModeFromEnv(t *testing.T) {
	t.Setenv("DEPENDENCY_MODE", " GRPC ")
	t.Setenv("DEPENDENCY_TARGET", "dns:///upstream:9000")

	bundle, err := buildFrom(t, minimalConfig)
	require.NoError(t, err)

	dep := bundle.Bootstrap.GetDependency()
	assert.Equal(t, conf.DependencyModeGRPC, dep.Mode)
	assert.Equal(t, "dns:///upstream:9000", dep.Target)
}

func TestBuild_DependencyModeFromEnvStillValidated(t *testing.T) {
	t.Setenv("DEPENDENCY_MODE", "grpc")

	_, err := buildFrom(t, minimalConfig)
	require.Error(t, err)

	var buildErr loader.BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "validate", buildErr.Stage)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no listeners",
			content: "dependency:\n  mode: static\n",
		},
		{
			name:    "grpc mode without target",
			content: minimalConfig + "dependency:\n  mode: grpc\n",
		},
		{
			name:    "unknown mode",
			content: minimalConfig + "dependency:\n  mode: carrier-pigeon\n",
		},
		{
			name:    "sampling ratio out of range",
			content: minimalConfig + "observability:\n  tracing:\n    sampling_ratio: 2\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildFrom(t, tt.content)
			require.Error(t, err)

			var buildErr loader.BuildError
			require.True(t, errors.As(err, &buildErr))
			assert.Equal(t, "validate", buildErr.Stage)
		})
	}
}

func TestBuild_LoadError(t *testing.T) {
	_, err := loader.Build(loader.Params{ConfPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	var buildErr loader.BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "load", buildErr.Stage)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestBuild_LoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, minimalConfig)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DEPENDENCY_VALUE=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DEPENDENCY_VALUE") })

	bundle, err := loader.Build(loader.Params{ConfPath: dir})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", bundle.Bootstrap.GetDependency().Value)
}
