// Package views 提供视图对象（VO）与 API DTO 之间的转换辅助函数。
// 负责将 Service 层返回的 VO 渲染为 gRPC/HTTP 响应，保持 Controller 层的精简。
package views

import (
	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/models/vo"

	"google.golang.org/protobuf/types/known/wrapperspb"
)

// NewStringReply 将问候语包装为 gRPC 响应消息。
func NewStringReply(message string) *wrapperspb.StringValue {
	return wrapperspb.String(message)
}

// NewGreetingReply 将 Greeting 视图对象转换为 HTTP 响应。
// 处理 nil 情况，返回空的 GreetingReply 以避免 panic。
func NewGreetingReply(greeting *vo.Greeting) *v1.GreetingReply {
	if greeting == nil {
		return &v1.GreetingReply{}
	}
	return &v1.GreetingReply{Kind: greeting.Kind, Message: greeting.Message}
}

// NewListGreetingsReply 渲染问候语列表，保持输入顺序。
func NewListGreetingsReply(greetings []*vo.Greeting) *v1.ListGreetingsReply {
	out := make([]*v1.GreetingReply, 0, len(greetings))
	for _, g := range greetings {
		out = append(out, NewGreetingReply(g))
	}
	return &v1.ListGreetingsReply{Greetings: out}
}
