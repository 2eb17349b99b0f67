package services

import (
	"context"

	v1 "github.com/bionicotaku/lingo-services-greeting/api/greeting/v1"
	"github.com/bionicotaku/lingo-services-greeting/internal/metadata"
	"github.com/bionicotaku/lingo-services-greeting/internal/models/vo"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

// Greeting kinds, one per greeting operation.
const (
	KindHello         = "hello"
	KindBye           = "bye"
	KindGoodMorning   = "good_morning"
	KindGoodAfternoon = "good_afternoon"
	KindGoodEvening   = "good_evening"
	KindGoodNight     = "good_night"
	KindDependency    = "dependency"
)

// Greeting literals.
const (
	MessageHello         = "Hello World"
	MessageBye           = "Bye Bye"
	MessageGoodMorning   = "Good morning"
	MessageGoodAfternoon = "Good afternoon"
	MessageGoodEvening   = "Good evening"
	MessageGoodNight     = "Good night"
)

// DependencyPrefix is prepended to every Dependency Provider result.
const DependencyPrefix = "My dependency: "

var (
	// ErrGreetingNotFound is returned for an unknown greeting kind.
	ErrGreetingNotFound = errors.NotFound(v1.ErrorReason_GREETING_NOT_FOUND.String(), "greeting not found")
	// ErrDependencyUnavailable is returned when no Dependency Provider is wired.
	ErrDependencyUnavailable = errors.ServiceUnavailable(v1.ErrorReason_DEPENDENCY_UNAVAILABLE.String(), "dependency provider unavailable")
)

// greetings is ordered; Greetings returns it in this order.
var greetings = []vo.Greeting{
	{Kind: KindHello, Message: MessageHello},
	{Kind: KindBye, Message: MessageBye},
	{Kind: KindGoodMorning, Message: MessageGoodMorning},
	{Kind: KindGoodAfternoon, Message: MessageGoodAfternoon},
	{Kind: KindGoodEvening, Message: MessageGoodEvening},
	{Kind: KindGoodNight, Message: MessageGoodNight},
}

// DependencyProvider is the external collaborator consulted by CallDependency.
type DependencyProvider interface {
	Get(ctx context.Context) (string, error)
}

// PublishedDependency is the value this instance serves to other instances
// through greeting.v1.DependencyService.
type PublishedDependency interface {
	Get(ctx context.Context) (string, error)
}

// GreetingUsecase returns constant greetings and relays the Dependency Provider.
type GreetingUsecase struct {
	dep DependencyProvider
	log *log.Helper
}

// NewGreetingUsecase constructs a GreetingUsecase around the injected Dependency Provider.
func NewGreetingUsecase(dep DependencyProvider, logger log.Logger) *GreetingUsecase {
	return &GreetingUsecase{dep: dep, log: log.NewHelper(logger)}
}

// Say returns "Hello World".
func (uc *GreetingUsecase) Say() string { return MessageHello }

// Bye returns "Bye Bye".
func (uc *GreetingUsecase) Bye() string { return MessageBye }

// GoodMorning returns "Good morning".
func (uc *GreetingUsecase) GoodMorning() string { return MessageGoodMorning }

// GoodAfternoon returns "Good afternoon".
func (uc *GreetingUsecase) GoodAfternoon() string { return MessageGoodAfternoon }

// GoodEvening returns "Good evening".
func (uc *GreetingUsecase) GoodEvening() string { return MessageGoodEvening }

// GoodNight returns "Good night".
func (uc *GreetingUsecase) GoodNight() string { return MessageGoodNight }

// CallDependency returns the Dependency Provider's value prefixed with DependencyPrefix.
// Errors from the provider are returned unchanged.
func (uc *GreetingUsecase) CallDependency(ctx context.Context) (string, error) {
	if uc.dep == nil {
		return "", ErrDependencyUnavailable
	}
	value, err := uc.dep.Get(ctx)
	if err != nil {
		meta, _ := metadata.FromContext(ctx)
		uc.log.WithContext(ctx).Errorf("call dependency failed: request_id=%s err=%v", meta.RequestID, err)
		return "", err
	}
	return DependencyPrefix + value, nil
}

// Greet looks up the greeting of the given kind.
func (uc *GreetingUsecase) Greet(ctx context.Context, kind string) (*vo.Greeting, error) {
	for _, g := range greetings {
		if g.Kind == kind {
			out := g
			return &out, nil
		}
	}
	uc.log.WithContext(ctx).Debugf("unknown greeting kind %q", kind)
	return nil, ErrGreetingNotFound
}

// Greetings lists every constant greeting.
func (uc *GreetingUsecase) Greetings() []*vo.Greeting {
	out := make([]*vo.Greeting, 0, len(greetings))
	for _, g := range greetings {
		out = append(out, &g)
	}
	return out
}
