package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// GetTransactionsQuery pages through a session's ledger. Filters are optional and
// given as the strings a front end collects; they are checked before the ledger is read.
type GetTransactionsQuery struct {
	SessionID         string
	FromDay           *int
	ToDay             *int
	Category          *string
	TransactionType   *string
	RelatedEntityType *string
	RelatedEntityID   *string
	Limit             int // ledger default page size when zero
	Offset            int
	OrderBy           string
}

// GetTransactionsResponse carries one page and the number of entries matching the filters
type GetTransactionsResponse struct {
	Transactions []*TransactionDTO
	Total        int
}

type TransactionDTO struct {
	ID                string
	SessionID         string
	Timestamp         time.Time
	Day               int
	Type              string
	Category          string
	Amount            int
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	Metadata          map[string]interface{}
	RelatedEntityType string
	RelatedEntityID   string
}

type GetTransactionsHandler struct {
	transactionRepo ledger.TransactionRepository
}

func NewGetTransactionsHandler(transactionRepo ledger.TransactionRepository) *GetTransactionsHandler {
	return &GetTransactionsHandler{transactionRepo: transactionRepo}
}

func (h *GetTransactionsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetTransactionsQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected request %T for transaction listing", request)
	}

	sessionID, err := parseSession(query.SessionID)
	if err != nil {
		return nil, err
	}
	opts, err := query.options()
	if err != nil {
		return nil, err
	}

	page, err := h.transactionRepo.FindBySession(ctx, sessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("listing ledger of session %s: %w", query.SessionID, err)
	}
	total, err := h.transactionRepo.CountBySession(ctx, sessionID, opts)
	if err != nil {
		return nil, fmt.Errorf("counting ledger of session %s: %w", query.SessionID, err)
	}

	resp := &GetTransactionsResponse{Total: total, Transactions: make([]*TransactionDTO, 0, len(page))}
	for _, tx := range page {
		resp.Transactions = append(resp.Transactions, newTransactionDTO(tx))
	}
	return resp, nil
}

// options converts the query's filters, rejecting unknown categories and types
func (q *GetTransactionsQuery) options() (ledger.QueryOptions, error) {
	opts := ledger.DefaultQueryOptions()
	opts.FromDay, opts.ToDay = q.FromDay, q.ToDay
	opts.RelatedEntityType, opts.RelatedEntityID = q.RelatedEntityType, q.RelatedEntityID
	opts.Offset = q.Offset
	if q.Limit > 0 {
		opts.Limit = q.Limit
	}
	if q.OrderBy != "" {
		opts.OrderBy = q.OrderBy
	}

	if q.Category != nil {
		category, err := ledger.ParseCategory(*q.Category)
		if err != nil {
			return opts, shared.NewGameError(shared.KindInvalidInput, "%v", err)
		}
		opts.Category = &category
	}
	if q.TransactionType != nil {
		kind, err := ledger.ParseTransactionType(*q.TransactionType)
		if err != nil {
			return opts, shared.NewGameError(shared.KindInvalidInput, "%v", err)
		}
		opts.TransactionType = &kind
	}
	return opts, nil
}

func newTransactionDTO(tx *ledger.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:                tx.ID().String(),
		SessionID:         tx.SessionID().String(),
		Timestamp:         tx.Timestamp(),
		Day:               tx.Day(),
		Type:              tx.TransactionType().String(),
		Category:          tx.Category().String(),
		Amount:            tx.Amount(),
		BalanceBefore:     tx.BalanceBefore(),
		BalanceAfter:      tx.BalanceAfter(),
		Description:       tx.Description(),
		Metadata:          tx.Metadata(),
		RelatedEntityType: tx.RelatedEntityType(),
		RelatedEntityID:   tx.RelatedEntityID(),
	}
}
