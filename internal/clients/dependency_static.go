// Package clients 包含 Dependency Provider 的实现：进程内静态值与远程 gRPC 门面。
// 实现 Service 层定义的 DependencyProvider 接口。
package clients

import "context"

// StaticDependency 返回配置的固定值，相当于进程内链接的依赖库。
type StaticDependency struct {
	value string
}

// NewStaticDependency 构造返回 value 的 StaticDependency。
func NewStaticDependency(value string) *StaticDependency {
	return &StaticDependency{value: value}
}

// Get 返回配置值，从不失败。
func (d *StaticDependency) Get(context.Context) (string, error) {
	return d.value, nil
}
