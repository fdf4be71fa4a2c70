package common

// Mediator types re-exported so handlers depend on common only.

import (
	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
)

type (
	Request        = mediator.Request
	Response       = mediator.Response
	RequestHandler = mediator.RequestHandler
	HandlerFunc    = mediator.HandlerFunc
	Middleware     = mediator.Middleware
	Mediator       = mediator.Mediator
)

var (
	NewMediator = mediator.NewMediator
)
