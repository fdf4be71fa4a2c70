package mediator

import "context"

// Request is any turn command or read-only query routed through the mediator.
// Handlers are keyed on the concrete type, so requests carry no marker methods.
type Request interface{}

// Response is whatever the handler for a Request produced
type Response interface{}

// RequestHandler resolves one concrete request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc adapts a plain function to RequestHandler. Middleware chains are
// assembled from these.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware runs around every dispatched request and decides whether to call next.
// Logging and command metrics are installed this way.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
