package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Mediator routes each request to the one handler registered for its concrete type.
// Every front end talks to the game only through Send.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	Use(middleware Middleware)
}

type mediator struct {
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

func NewMediator() Mediator {
	return &mediator{handlers: map[reflect.Type]RequestHandler{}}
}

// Register fails on a nil type or handler and on a second handler for the same type
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	switch {
	case requestType == nil:
		return errors.New("mediator: register with nil request type")
	case handler == nil:
		return fmt.Errorf("mediator: nil handler for %s", requestType)
	}
	if existing, taken := m.handlers[requestType]; taken {
		return fmt.Errorf("mediator: %s is already handled by %T", requestType, existing)
	}
	m.handlers[requestType] = handler
	return nil
}

// Use adds middleware. Earlier middleware wraps later middleware.
func (m *mediator) Use(middleware Middleware) {
	m.middlewares = append(m.middlewares, middleware)
}

func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, errors.New("mediator: send nil request")
	}
	handler, found := m.handlers[reflect.TypeOf(request)]
	if !found {
		return nil, fmt.Errorf("mediator: nothing handles %T", request)
	}
	return m.chain(handler.Handle)(ctx, request)
}

// chain wraps the handler in the middlewares, innermost last
func (m *mediator) chain(final HandlerFunc) HandlerFunc {
	next := final
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		mw, inner := m.middlewares[i], next
		next = func(ctx context.Context, request Request) (Response, error) {
			return mw(ctx, request, inner)
		}
	}
	return next
}

// RegisterHandler registers handler for the request type T, usually a pointer type:
// RegisterHandler[*commands.TravelCommand](m, h)
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	return m.Register(reflect.TypeFor[T](), handler)
}

// RequestName is the bare type name of request ("TravelCommand"), for logs and metrics
func RequestName(request Request) string {
	t := reflect.TypeOf(request)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "nil"
	}
	return t.Name()
}
