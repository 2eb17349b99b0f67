package controllers

import (
	"context"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/metadata"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"
	"github.com/bionicotaku/lingo-services-greeting/internal/views"

	"github.com/go-kratos/kratos/v2/log"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DependencyHandler 对外发布本实例的依赖值，使其可作为其他实例的远程 Dependency Provider。
type DependencyHandler struct {
	published services.PublishedDependency
	log       *log.Helper
}

var _ v1.DependencyServiceServer = (*DependencyHandler)(nil)

// NewDependencyHandler 构造 DependencyService 的 gRPC Handler。
func NewDependencyHandler(published services.PublishedDependency, logger log.Logger) *DependencyHandler {
	return &DependencyHandler{published: published, log: log.NewHelper(logger)}
}

// Get 返回发布的依赖值（不带前缀）。
func (h *DependencyHandler) Get(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	if h.published == nil {
		return nil, services.ErrDependencyUnavailable
	}
	value, err := h.published.Get(ctx)
	if err != nil {
		h.log.WithContext(ctx).Errorf("published dependency failed: %v", err)
		return nil, err
	}
	if meta, ok := metadata.FromContext(ctx); ok && meta.Caller != "" {
		h.log.WithContext(ctx).Debugf("published dependency served: caller=%s request_id=%s", meta.Caller, meta.RequestID)
	}
	return views.NewStringReply(value), nil
}
