// Package loader turns configs/*.yaml plus environment overrides into typed configuration.
package loader

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/bionicotaku/lingo-services-greeting/internal/conf"
	loginfra "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/logger"

	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	envConfPath         = "CONF_PATH"
	envServiceName      = "SERVICE_NAME"
	envServiceVersion   = "SERVICE_VERSION"
	envAppEnv           = "APP_ENV"
	envLogLevel         = "LOG_LEVEL"
	envPort             = "PORT"
	envGRPCPort         = "GRPC_PORT"
	envDependencyMode   = "DEPENDENCY_MODE"
	envDependencyTarget = "DEPENDENCY_TARGET"
	envDependencyValue  = "DEPENDENCY_VALUE"
)

var envFileNames = []string{".env.local", ".env"}

// Params 包含构造配置 Bundle 所需的运行时输入参数。
type Params struct {
	ConfPath       string // 配置文件路径（可为空，使用默认值）
	ServiceName    string // 编译期注入的服务名（可为空）
	ServiceVersion string // 编译期注入的版本号（可为空）
}

// ServiceMetadata 保存服务标识信息，供日志和可观测性组件使用。
type ServiceMetadata struct {
	Name        string
	Version     string
	Environment string
	InstanceID  string
	LogLevel    string
}

// Bundle 聚合强类型的配置片段，供下游 Wire 注入使用。
type Bundle struct {
	Bootstrap *conf.Bootstrap
	ObsConfig obswire.ObservabilityConfig
	Service   ServiceMetadata
}

// BuildError 捕获配置构建过程中的上下文错误信息。
type BuildError struct {
	Stage string
	Path  string
	Err   error
}

// Error 实现 error 接口，提供包含上下文的错误信息。
func (e BuildError) Error() string {
	if e.Stage == "" {
		return e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("config %s at %q: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Stage, e.Err)
}

// Unwrap 暴露底层错误，支持 errors.Is/As 链式查询。
func (e BuildError) Unwrap() error {
	return e.Err
}

// ObservabilityInfo 将服务元信息转换为 observability.ServiceInfo。
func (m ServiceMetadata) ObservabilityInfo() obswire.ServiceInfo {
	return obswire.ServiceInfo{
		Name:        m.Name,
		Version:     m.Version,
		Environment: m.Environment,
	}
}

// LoggerConfig 将服务元信息转换为 logger.Config。
func (m ServiceMetadata) LoggerConfig() loginfra.Config {
	return loginfra.Config{
		Service:    m.Name,
		Version:    m.Version,
		InstanceID: m.InstanceID,
		Env:        m.Environment,
		Level:      m.LogLevel,
	}
}

// ParseConfPath 解析 -conf 命令行参数，未提供时回退到 ResolveConfPath 规则。
func ParseConfPath(fs *flag.FlagSet, args []string) (string, error) {
	var confPath string
	fs.StringVar(&confPath, "conf", "", "config path, eg: -conf configs/config.yaml")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return ResolveConfPath(confPath), nil
}

// Build 从 bootstrap 配置文件构建 Bundle。
//
// 流程：
// 1. 解析配置路径并加载 .env 文件
// 2. 加载配置、应用环境变量覆盖与默认值，并校验
// 3. 推导服务元信息
// 4. 转换可观测性配置
func Build(params Params) (*Bundle, error) {
	confPath := ResolveConfPath(params.ConfPath)
	loadEnvFiles(confPath)

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Bootstrap: bootstrap,
		ObsConfig: toObservabilityConfig(bootstrap.GetObservability()),
		Service:   buildServiceMetadata(params),
	}, nil
}

// ResolveConfPath 应用回退规则确定要加载的配置目录/文件路径。
// 优先级：显式传入路径 > CONF_PATH 环境变量 > 默认路径。
func ResolveConfPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(envConfPath); env != "" {
		return env
	}
	return defaultConfPath
}

// loadBootstrap 从指定路径加载、覆盖并校验 Bootstrap 配置。
//
// 错误阶段：
//   - "load": 文件读取失败
//   - "scan": YAML/JSON 解析失败
//   - "validate": 配置校验失败
func loadBootstrap(confPath string) (*conf.Bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, BuildError{Stage: "load", Path: confPath, Err: err}
	}
	defer c.Close()

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		return nil, BuildError{Stage: "scan", Path: confPath, Err: err}
	}
	applyDefaults(&bc)
	applyEnvOverrides(&bc)

	if err := validate(&bc); err != nil {
		return nil, BuildError{Stage: "validate", Path: confPath, Err: err}
	}
	return &bc, nil
}

// applyEnvOverrides 应用环境变量覆盖配置文件中的特定字段。
//
// 支持的环境变量：
//   - PORT: 覆盖 server.http.addr 的端口部分（Cloud Run 动态端口）
//   - GRPC_PORT: 覆盖 server.grpc.addr 的端口部分
//   - DEPENDENCY_MODE: 覆盖 dependency.mode（static / grpc）
//   - DEPENDENCY_TARGET: 覆盖 dependency.target
//   - DEPENDENCY_VALUE: 覆盖 dependency.value
//
// 环境变量为空时不覆盖（DEPENDENCY_VALUE 允许显式设为空）。
// 需在 applyDefaults 之后调用，此时 dependency 节点一定存在。
func applyEnvOverrides(bc *conf.Bootstrap) {
	if bc == nil {
		return
	}
	if port := os.Getenv(envPort); port != "" {
		if http := bc.GetServer().GetHttp(); http != nil {
			http.Addr = replacePort(http.Addr, port)
		}
	}
	if port := os.Getenv(envGRPCPort); port != "" {
		if grpc := bc.GetServer().GetGrpc(); grpc != nil {
			grpc.Addr = replacePort(grpc.Addr, port)
		}
	}
	if dep := bc.GetDependency(); dep != nil {
		if mode := strings.TrimSpace(os.Getenv(envDependencyMode)); mode != "" {
			dep.Mode = strings.ToLower(mode)
		}
		if target := os.Getenv(envDependencyTarget); target != "" {
			dep.Target = target
		}
		if value, ok := os.LookupEnv(envDependencyValue); ok {
			dep.Value = value
		}
	}
}

func applyDefaults(bc *conf.Bootstrap) {
	if bc.Dependency == nil {
		bc.Dependency = &conf.Dependency{}
	}
	if bc.Dependency.Mode == "" {
		bc.Dependency.Mode = conf.DependencyModeStatic
	}
	if bc.Dependency.Timeout == 0 {
		bc.Dependency.Timeout = conf.Duration(defaultDependencyTimeout)
	}
}

// buildServiceMetadata 构建服务元信息。
// 优先级：Params > 环境变量 > 默认值。
func buildServiceMetadata(params Params) ServiceMetadata {
	host, _ := os.Hostname()
	return ServiceMetadata{
		Name:        firstNonEmpty(params.ServiceName, os.Getenv(envServiceName), defaultServiceName),
		Version:     firstNonEmpty(params.ServiceVersion, os.Getenv(envServiceVersion), defaultServiceVersion),
		Environment: resolveEnvironment(os.Getenv(envAppEnv)),
		InstanceID:  resolveInstanceID(host),
		LogLevel:    strings.ToLower(strings.TrimSpace(os.Getenv(envLogLevel))),
	}
}

// resolveEnvironment 规范化常见环境缩写。
func resolveEnvironment(raw string) string {
	env := strings.ToLower(strings.TrimSpace(raw))
	switch env {
	case "":
		return defaultEnvironment
	case "dev":
		return "development"
	case "prod":
		return "production"
	default:
		return env
	}
}

// resolveInstanceID 在 hostname 不可用时回退到随机 UUID。
func resolveInstanceID(host string) string {
	if host = strings.TrimSpace(host); host != "" {
		return host
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return defaultInstanceID
	}
	return id.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// loadEnvFiles best-effort 加载配置相关的 .env 文件，失败时忽略以保持幂等。
func loadEnvFiles(confPath string) {
	files := envFileCandidates(confPath)
	if len(files) == 0 {
		return
	}
	_ = godotenv.Load(files...)
}

// envFileCandidates 按 confPath 目录 -> 当前工作目录的顺序返回存在的 .env 文件。
// godotenv 不会覆盖已设置的变量，因此靠前的文件优先。
func envFileCandidates(confPath string) []string {
	seen := make(map[string]struct{})
	var files []string
	for _, dir := range orderedDirs(confPath) {
		for _, name := range envFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			files = append(files, candidate)
			seen[candidate] = struct{}{}
		}
	}
	return files
}

func orderedDirs(confPath string) []string {
	var dirs []string
	appendUnique := func(path string) {
		if path == "" {
			return
		}
		clean := filepath.Clean(path)
		for _, existing := range dirs {
			if existing == clean {
				return
			}
		}
		dirs = append(dirs, clean)
	}

	if confPath != "" {
		if info, err := os.Stat(confPath); err == nil {
			if info.IsDir() {
				appendUnique(confPath)
			} else {
				appendUnique(filepath.Dir(confPath))
			}
		}
	}
	if cwd, err := os.Getwd(); err == nil {
		appendUnique(cwd)
	}
	return dirs
}

// toObservabilityConfig 将配置中的 observability 段转换为 observability 包的规范化结构。
func toObservabilityConfig(src *conf.Observability) obswire.ObservabilityConfig {
	if src == nil {
		return obswire.ObservabilityConfig{}
	}
	cfg := obswire.ObservabilityConfig{
		GlobalAttributes: cloneStringMap(src.GlobalAttributes),
	}
	if tr := src.Tracing; tr != nil {
		cfg.Tracing = &obswire.TracingConfig{
			Enabled:       tr.Enabled,
			Exporter:      tr.Exporter,
			Endpoint:      tr.Endpoint,
			Headers:       cloneStringMap(tr.Headers),
			Insecure:      tr.Insecure,
			SamplingRatio: tr.SamplingRatio,
			BatchTimeout:  tr.BatchTimeout.AsDuration(),
			ExportTimeout: tr.ExportTimeout.AsDuration(),
			Required:      tr.Required,
		}
	}
	if mt := src.Metrics; mt != nil {
		grpcEnabled := defaultGRPCMetricsEnabled
		if mt.GrpcEnabled != nil {
			grpcEnabled = *mt.GrpcEnabled
		}
		grpcIncludeHealth := defaultGRPCIncludeHealth
		if mt.GrpcIncludeHealth != nil {
			grpcIncludeHealth = *mt.GrpcIncludeHealth
		}
		cfg.Metrics = &obswire.MetricsConfig{
			Enabled:             mt.Enabled,
			Exporter:            mt.Exporter,
			Endpoint:            mt.Endpoint,
			Headers:             cloneStringMap(mt.Headers),
			Insecure:            mt.Insecure,
			Interval:            mt.Interval.AsDuration(),
			DisableRuntimeStats: mt.DisableRuntimeStats,
			Required:            mt.Required,
			GRPCEnabled:         grpcEnabled,
			GRPCIncludeHealth:   grpcIncludeHealth,
		}
	}
	return cfg
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// replacePort 替换地址中的端口部分，保留 host。
//   - "0.0.0.0:9090" -> "0.0.0.0:8080"
//   - "[::1]:9090" -> "[::1]:8080"
//   - "" 或无法解析 -> "0.0.0.0:8080"
func replacePort(addr, newPort string) string {
	if addr == "" {
		return "0.0.0.0:" + newPort
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "0.0.0.0:" + newPort
	}
	return net.JoinHostPort(host, newPort)
}
