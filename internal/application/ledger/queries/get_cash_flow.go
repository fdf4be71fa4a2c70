package queries

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Cash flow groupings
const (
	GroupByCategory = "category"
	GroupByDay      = "day"
)

// GetCashFlowQuery splits a session's credit movements into inflow and outflow,
// grouped by category or by game day.
type GetCashFlowQuery struct {
	SessionID string
	FromDay   *int
	ToDay     *int
	GroupBy   string // GroupByCategory when empty
}

type GetCashFlowResponse struct {
	Period  string
	GroupBy string
	Groups  []*CashFlowGroup
	Summary CashFlowSummary
}

// CashFlowGroup is one row of the statement. Outflow is kept positive.
type CashFlowGroup struct {
	Key          string
	TotalInflow  int
	TotalOutflow int
	NetFlow      int
	Transactions int

	order int
}

type CashFlowSummary struct {
	TotalInflow  int
	TotalOutflow int
	NetCashFlow  int
}

type GetCashFlowHandler struct {
	transactionRepo ledger.TransactionRepository
}

func NewGetCashFlowHandler(transactionRepo ledger.TransactionRepository) *GetCashFlowHandler {
	return &GetCashFlowHandler{transactionRepo: transactionRepo}
}

func (h *GetCashFlowHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetCashFlowQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected request %T for cash flow", request)
	}

	groupBy := cmp.Or(query.GroupBy, GroupByCategory)
	if groupBy != GroupByCategory && groupBy != GroupByDay {
		return nil, shared.NewGameError(shared.KindInvalidInput,
			"cash flow can be grouped by %s or %s, not %q", GroupByCategory, GroupByDay, groupBy)
	}

	entries, err := loadSessionLedger(ctx, h.transactionRepo, query.SessionID, query.FromDay, query.ToDay)
	if err != nil {
		return nil, err
	}

	statement := buildCashFlow(entries, groupBy)
	statement.Period = describePeriod(query.FromDay, query.ToDay)
	return statement, nil
}

func buildCashFlow(entries []*ledger.Transaction, groupBy string) *GetCashFlowResponse {
	rank := make(map[ledger.Category]int)
	for i, category := range ledger.AllCategories() {
		rank[category] = i
	}

	byKey := make(map[string]*CashFlowGroup)
	var summary CashFlowSummary
	for _, tx := range entries {
		key, order := tx.Category().String(), rank[tx.Category()]
		if groupBy == GroupByDay {
			key, order = strconv.Itoa(tx.Day()), tx.Day()
		}
		group := byKey[key]
		if group == nil {
			group = &CashFlowGroup{Key: key, order: order}
			byKey[key] = group
		}

		if amount := tx.Amount(); amount > 0 {
			group.TotalInflow += amount
			summary.TotalInflow += amount
		} else {
			group.TotalOutflow -= amount
			summary.TotalOutflow -= amount
		}
		group.NetFlow += tx.Amount()
		group.Transactions++
	}
	summary.NetCashFlow = summary.TotalInflow - summary.TotalOutflow

	groups := make([]*CashFlowGroup, 0, len(byKey))
	for _, group := range byKey {
		groups = append(groups, group)
	}
	slices.SortFunc(groups, func(a, b *CashFlowGroup) int { return cmp.Compare(a.order, b.order) })

	return &GetCashFlowResponse{GroupBy: groupBy, Groups: groups, Summary: summary}
}
