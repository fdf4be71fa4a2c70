package common

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// EventSink receives the side effects of a successful operation.
// Implementations record ledger entries and price history; their failures never undo game state.
type EventSink interface {
	Publish(ctx context.Context, sessionID shared.SessionID, events game.Events) error
}

// SessionRunner loads a session, holds its lock for the whole operation,
// then forwards the emitted events to the sink.
type SessionRunner struct {
	sessions game.SessionRepository
	sink     EventSink
}

// NewSessionRunner creates a runner. A nil sink discards events.
func NewSessionRunner(sessions game.SessionRepository, sink EventSink) *SessionRunner {
	return &SessionRunner{
		sessions: sessions,
		sink:     sink,
	}
}

// SetSink replaces the event sink
func (r *SessionRunner) SetSink(sink EventSink) {
	r.sink = sink
}

// Sessions exposes the repository the runner reads from
func (r *SessionRunner) Sessions() game.SessionRepository {
	return r.sessions
}

// Run executes fn against the session under its lock
func (r *SessionRunner) Run(ctx context.Context, sessionID string, fn func(*game.Session) error) error {
	id, err := shared.ParseSessionID(sessionID)
	if err != nil {
		return shared.NewGameError(shared.KindInvalidInput, "invalid session id %q", sessionID)
	}
	session, err := r.sessions.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	session.Lock()
	defer session.Unlock()

	opErr := fn(session)
	r.flush(ctx, session)
	return opErr
}

// Publish forwards any pending events of a session the caller already holds
func (r *SessionRunner) Publish(ctx context.Context, session *game.Session) {
	r.flush(ctx, session)
}

func (r *SessionRunner) flush(ctx context.Context, session *game.Session) {
	events := session.DrainEvents()
	if events.IsEmpty() || r.sink == nil {
		return
	}
	if err := r.sink.Publish(ctx, session.ID(), events); err != nil {
		LoggerFromContext(ctx).Warn("failed to record session events",
			zap.String("session", session.ID().String()),
			zap.Int("movements", len(events.Movements)),
			zap.Int("regenerations", len(events.Regenerations)),
			zap.Error(err),
		)
	}
}
