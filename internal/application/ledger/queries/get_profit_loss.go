package queries

import (
	"context"
	"fmt"
	"slices"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
)

// GetProfitLossQuery asks for the captain's profit and loss statement.
// Nil day bounds leave that side of the window open.
type GetProfitLossQuery struct {
	SessionID string
	FromDay   *int
	ToDay     *int
}

// CategoryAmount is one statement line. Amount is always positive; the section it
// appears in says which way the credits moved.
type CategoryAmount struct {
	Category string
	Amount   int
}

type GetProfitLossResponse struct {
	Period        string
	Revenue       []CategoryAmount // in ledger.AllCategories order, empty categories omitted
	Expenses      []CategoryAmount
	TotalRevenue  int
	TotalExpenses int
	NetProfit     int
}

type GetProfitLossHandler struct {
	transactionRepo ledger.TransactionRepository
}

func NewGetProfitLossHandler(transactionRepo ledger.TransactionRepository) *GetProfitLossHandler {
	return &GetProfitLossHandler{transactionRepo: transactionRepo}
}

func (h *GetProfitLossHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetProfitLossQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected request %T for profit and loss", request)
	}

	entries, err := loadSessionLedger(ctx, h.transactionRepo, query.SessionID, query.FromDay, query.ToDay)
	if err != nil {
		return nil, err
	}

	statement := buildProfitLoss(entries)
	statement.Period = describePeriod(query.FromDay, query.ToDay)
	return statement, nil
}

func buildProfitLoss(entries []*ledger.Transaction) *GetProfitLossResponse {
	perCategory := make(map[ledger.Category]int)
	for _, tx := range entries {
		perCategory[tx.Category()] += tx.Amount()
	}

	statement := &GetProfitLossResponse{}
	for _, category := range ledger.AllCategories() {
		net, seen := perCategory[category]
		if !seen {
			continue
		}
		if category.IsIncome() {
			statement.Revenue = append(statement.Revenue, CategoryAmount{category.String(), net})
			statement.TotalRevenue += net
		} else {
			statement.Expenses = append(statement.Expenses, CategoryAmount{category.String(), -net})
			statement.TotalExpenses -= net
		}
	}
	statement.NetProfit = statement.TotalRevenue - statement.TotalExpenses
	return statement
}

// AmountFor returns the statement line for category, or zero when the category had no entries
func (r *GetProfitLossResponse) AmountFor(category ledger.Category) int {
	for _, line := range slices.Concat(r.Revenue, r.Expenses) {
		if line.Category == category.String() {
			return line.Amount
		}
	}
	return 0
}
