// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
package controllers

import (
	"context"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/models/vo"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"
	"github.com/bionicotaku/lingo-services-greeting/internal/views"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GreetingHandler 同时实现 GreetingService 的 gRPC 与 HTTP 接口。
type GreetingHandler struct {
	uc *services.GreetingUsecase
}

var (
	_ v1.GreetingServiceServer = (*GreetingHandler)(nil)
	_ v1.GreetingHTTPServer    = (*GreetingHandler)(nil)
)

// NewGreetingHandler 构造一个由 GreetingUsecase 支撑的 Handler。
func NewGreetingHandler(uc *services.GreetingUsecase) *GreetingHandler {
	return &GreetingHandler{uc: uc}
}

func (h *GreetingHandler) Say(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.Say()), nil
}

func (h *GreetingHandler) Bye(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.Bye()), nil
}

func (h *GreetingHandler) GoodMorning(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.GoodMorning()), nil
}

func (h *GreetingHandler) GoodAfternoon(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.GoodAfternoon()), nil
}

func (h *GreetingHandler) GoodEvening(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.GoodEvening()), nil
}

func (h *GreetingHandler) GoodNight(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return views.NewStringReply(h.uc.GoodNight()), nil
}

// CallDependency 转发至 Dependency Provider，错误原样返回。
func (h *GreetingHandler) CallDependency(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	message, err := h.uc.CallDependency(ctx)
	if err != nil {
		return nil, err
	}
	return views.NewStringReply(message), nil
}

// Greet 按 kind 查找问候语，未知 kind 返回 NotFound。
func (h *GreetingHandler) Greet(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	greeting, err := h.uc.Greet(ctx, in.GetValue())
	if err != nil {
		return nil, err
	}
	return views.NewStringReply(greeting.Message), nil
}

// ListGreetings 实现 GET /v1/greetings。
func (h *GreetingHandler) ListGreetings(context.Context) (*v1.ListGreetingsReply, error) {
	return views.NewListGreetingsReply(h.uc.Greetings()), nil
}

// GetGreeting 实现 GET /v1/greetings/{kind}。
func (h *GreetingHandler) GetGreeting(ctx context.Context, in *v1.GetGreetingRequest) (*v1.GreetingReply, error) {
	greeting, err := h.uc.Greet(ctx, in.Kind)
	if err != nil {
		return nil, err
	}
	return views.NewGreetingReply(greeting), nil
}

// CallDependencyHTTP 实现 GET /v1/dependency。
func (h *GreetingHandler) CallDependencyHTTP(ctx context.Context) (*v1.GreetingReply, error) {
	message, err := h.uc.CallDependency(ctx)
	if err != nil {
		return nil, err
	}
	return views.NewGreetingReply(&vo.Greeting{Kind: services.KindDependency, Message: message}), nil
}
