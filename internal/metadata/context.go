// Package metadata 提供 HandlerMetadata 在 Context 中的存取工具，供控制器与服务层共享。
package metadata

import (
	"context"
	"strings"

	"github.com/go-kratos/kratos/v2/metadata"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/google/uuid"
)

const (
	// PropagatedPrefix 为实例间透传的 metadata 前缀，服务端与客户端中间件共用。
	PropagatedPrefix = "x-greeting-"
	// HeaderRequestID 在实例间透传的请求 ID。
	HeaderRequestID = "x-greeting-request-id"
	// HeaderCaller 链路起点自报的调用方名称，可为空，沿链路原样透传。
	HeaderCaller = "x-greeting-caller"
)

// HandlerMetadata 描述从请求头或上游链路解析出的上下文信息。
type HandlerMetadata struct {
	RequestID string
	Caller    string
}

// IsZero 判断 Metadata 是否为空。
func (m HandlerMetadata) IsZero() bool {
	return m.RequestID == "" && m.Caller == ""
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.IsZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}

// Server 解析请求头中的 HandlerMetadata 并注入 Context。
//
// 缺少 request id 时生成一个 UUID 并写回 server metadata，
// 使 metadata.Client 在下游调用中继续透传。需放在 metadata.Server 之后。
func Server() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			var meta HandlerMetadata
			md, ok := metadata.FromServerContext(ctx)
			if ok {
				meta.RequestID = strings.TrimSpace(md.Get(HeaderRequestID))
				meta.Caller = strings.TrimSpace(md.Get(HeaderCaller))
			}
			if meta.RequestID == "" {
				meta.RequestID = uuid.NewString()
				if !ok {
					md = metadata.New()
					ctx = metadata.NewServerContext(ctx, md)
				}
				md.Set(HeaderRequestID, meta.RequestID)
			}
			return handler(Inject(ctx, meta), req)
		}
	}
}
