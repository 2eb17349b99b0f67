package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationGreetingListGreetings  = "/greeting.v1.GreetingService/ListGreetings"
	OperationGreetingGetGreeting    = "/greeting.v1.GreetingService/Greet"
	OperationGreetingCallDependency = "/greeting.v1.GreetingService/CallDependency"
)

// GreetingReply is the JSON body of a single greeting.
type GreetingReply struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ListGreetingsReply is the JSON body of GET /v1/greetings.
type ListGreetingsReply struct {
	Greetings []*GreetingReply `json:"greetings"`
}

// GetGreetingRequest carries the path variable of GET /v1/greetings/{kind}.
type GetGreetingRequest struct {
	Kind string `json:"kind"`
}

// GreetingHTTPServer is the HTTP API of the greeting service.
type GreetingHTTPServer interface {
	ListGreetings(context.Context) (*ListGreetingsReply, error)
	GetGreeting(context.Context, *GetGreetingRequest) (*GreetingReply, error)
	CallDependencyHTTP(context.Context) (*GreetingReply, error)
}

// RegisterGreetingHTTPServer mounts the greeting routes on s.
func RegisterGreetingHTTPServer(s *http.Server, srv GreetingHTTPServer) {
	r := s.Route("/")
	r.GET("/v1/greetings", _Greeting_ListGreetings0_HTTP_Handler(srv))
	r.GET("/v1/greetings/{kind}", _Greeting_GetGreeting0_HTTP_Handler(srv))
	r.GET("/v1/dependency", _Greeting_CallDependency0_HTTP_Handler(srv))
}

func _Greeting_ListGreetings0_HTTP_Handler(srv GreetingHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationGreetingListGreetings)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return srv.ListGreetings(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*ListGreetingsReply))
	}
}

func _Greeting_GetGreeting0_HTTP_Handler(srv GreetingHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := GetGreetingRequest{Kind: ctx.Vars().Get("kind")}
		http.SetOperation(ctx, OperationGreetingGetGreeting)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetGreeting(ctx, req.(*GetGreetingRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GreetingReply))
	}
}

func _Greeting_CallDependency0_HTTP_Handler(srv GreetingHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		http.SetOperation(ctx, OperationGreetingCallDependency)
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return srv.CallDependencyHTTP(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*GreetingReply))
	}
}
