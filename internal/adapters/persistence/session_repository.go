package persistence

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// ErrSessionNotFound is returned when no live session has the requested id
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// InMemorySessionRepository keeps live sessions for the lifetime of the process.
// Game state is not persisted; only the ledger and price history are.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
	order    []string
}

// NewInMemorySessionRepository creates an empty session store
func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*game.Session),
	}
}

// Add stores a new session
func (r *InMemorySessionRepository) Add(ctx context.Context, session *game.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := session.ID().String()
	if _, exists := r.sessions[key]; exists {
		return fmt.Errorf("session %s already exists", key)
	}
	r.sessions[key] = session
	r.order = append(r.order, key)
	return nil
}

// FindByID returns a live session
func (r *InMemorySessionRepository) FindByID(ctx context.Context, id shared.SessionID) (*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id.String()]
	if !ok {
		return nil, &ErrSessionNotFound{ID: id.String()}
	}
	return session, nil
}

// Remove drops a session; removing an unknown id is not an error
func (r *InMemorySessionRepository) Remove(ctx context.Context, id shared.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.sessions[key]; !ok {
		return nil
	}
	delete(r.sessions, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns sessions in creation order
func (r *InMemorySessionRepository) List(ctx context.Context) ([]*game.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*game.Session, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.sessions[key])
	}
	return out, nil
}

// IDs returns the ids of every live session, sorted
func (r *InMemorySessionRepository) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for key := range r.sessions {
		ids = append(ids, key)
	}
	sort.Strings(ids)
	return ids
}
