package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
)

// ListLedgerSessionsQuery finds every session that has recorded at least one transaction.
// The ledger outlives the in-memory sessions, so finished games are listed too.
type ListLedgerSessionsQuery struct{}

type ListLedgerSessionsResponse struct {
	SessionIDs []string // most recently active first
}

type ListLedgerSessionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

func NewListLedgerSessionsHandler(transactionRepo ledger.TransactionRepository) *ListLedgerSessionsHandler {
	return &ListLedgerSessionsHandler{transactionRepo: transactionRepo}
}

func (h *ListLedgerSessionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListLedgerSessionsQuery); !ok {
		return nil, fmt.Errorf("unexpected request %T for session listing", request)
	}

	ids, err := h.transactionRepo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ledger sessions: %w", err)
	}

	resp := &ListLedgerSessionsResponse{SessionIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.SessionIDs = append(resp.SessionIDs, id.String())
	}
	return resp, nil
}
