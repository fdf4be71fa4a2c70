package ledger

import (
	"context"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Sort orders for QueryOptions.OrderBy. Repositories may accept day and amount orders too.
const (
	OrderNewestFirst = "timestamp DESC"
	OrderOldestFirst = "timestamp ASC"
)

// TransactionRepository stores the credit movements of every session. Entries are
// append-only: the game never edits or deletes a recorded transaction.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	// FindByID only finds id inside sessionID; another session's id is not found
	FindByID(ctx context.Context, id TransactionID, sessionID shared.SessionID) (*Transaction, error)
	FindBySession(ctx context.Context, sessionID shared.SessionID, opts QueryOptions) ([]*Transaction, error)
	// CountBySession ignores Limit and Offset
	CountBySession(ctx context.Context, sessionID shared.SessionID, opts QueryOptions) (int, error)
	// ListSessions is ordered by most recent activity
	ListSessions(ctx context.Context) ([]shared.SessionID, error)
}

// QueryOptions narrows a session's ledger. Nil filters match everything and the day
// bounds are inclusive.
type QueryOptions struct {
	FromDay           *int
	ToDay             *int
	Category          *Category
	TransactionType   *TransactionType
	RelatedEntityType *string // e.g. "commodity", "factory", "license"
	RelatedEntityID   *string

	Limit   int // zero means no limit
	Offset  int
	OrderBy string // OrderNewestFirst when empty or unrecognized
}

// DefaultQueryOptions is one page of the newest entries
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{Limit: 50, OrderBy: OrderNewestFirst}
}
