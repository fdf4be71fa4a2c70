package game

import (
	"context"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// SessionRepository holds live sessions
type SessionRepository interface {
	Add(ctx context.Context, session *Session) error
	FindByID(ctx context.Context, id shared.SessionID) (*Session, error)
	Remove(ctx context.Context, id shared.SessionID) error
	List(ctx context.Context) ([]*Session, error)
}
