package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/database"
)

type entry struct {
	day    int
	kind   ledger.TransactionType
	amount int
}

// seedLedger writes a short voyage: buy food, fly, sell, then license and loan on day 3
func seedLedger(t *testing.T) (ledger.TransactionRepository, string) {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	repo := persistence.NewGormTransactionRepository(db)

	sessionID := shared.NewSessionID()
	clock := shared.NewMockClock(time.Time{})
	balance := 1000
	for _, e := range []entry{
		{0, ledger.TransactionTypePurchaseCargo, -50},
		{0, ledger.TransactionTypeFuel, -13},
		{1, ledger.TransactionTypeSellCargo, 80},
		{3, ledger.TransactionTypeLoanDisbursement, 500},
		{3, ledger.TransactionTypeLicensePurchase, -400},
	} {
		tx, err := ledger.NewTransaction(ledger.TransactionParams{
			SessionID:     sessionID,
			Timestamp:     clock.Now(),
			Day:           e.day,
			Type:          e.kind,
			Amount:        e.amount,
			BalanceBefore: balance,
			BalanceAfter:  balance + e.amount,
		})
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), tx))
		balance += e.amount
		clock.Advance(time.Second)
	}
	return repo, sessionID.String()
}

func day(d int) *int { return &d }

func TestGetProfitLoss_WholeGame(t *testing.T) {
	// Arrange
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetProfitLossHandler(repo)

	// Act
	resp, err := handler.Handle(context.Background(), &queries.GetProfitLossQuery{SessionID: sessionID})

	// Assert
	require.NoError(t, err)
	pnl := resp.(*queries.GetProfitLossResponse)
	assert.Equal(t, "all days", pnl.Period)
	assert.Equal(t, 580, pnl.TotalRevenue)
	assert.Equal(t, 463, pnl.TotalExpenses)
	assert.Equal(t, 117, pnl.NetProfit)
	assert.Equal(t, []queries.CategoryAmount{
		{Category: "TRADING_REVENUE", Amount: 80},
		{Category: "FINANCING", Amount: 500},
	}, pnl.Revenue)
	assert.Equal(t, 13, pnl.AmountFor(ledger.CategoryFuelCosts))
	assert.Equal(t, 0, pnl.AmountFor(ledger.CategoryFactoryRevenue))
}

func TestGetProfitLoss_DayWindow(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetProfitLossHandler(repo)

	resp, err := handler.Handle(context.Background(), &queries.GetProfitLossQuery{
		SessionID: sessionID,
		FromDay:   day(1),
		ToDay:     day(1),
	})

	require.NoError(t, err)
	pnl := resp.(*queries.GetProfitLossResponse)
	assert.Equal(t, "day 1 to day 1", pnl.Period)
	assert.Equal(t, 80, pnl.NetProfit)
	assert.Empty(t, pnl.Expenses)
}

func TestGetProfitLoss_RejectsBackwardsWindow(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetProfitLossHandler(repo)

	_, err := handler.Handle(context.Background(), &queries.GetProfitLossQuery{
		SessionID: sessionID,
		FromDay:   day(3),
		ToDay:     day(1),
	})

	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
}

func TestGetCashFlow_ByDay(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetCashFlowHandler(repo)

	resp, err := handler.Handle(context.Background(), &queries.GetCashFlowQuery{
		SessionID: sessionID,
		GroupBy:   queries.GroupByDay,
	})

	require.NoError(t, err)
	flow := resp.(*queries.GetCashFlowResponse)
	require.Len(t, flow.Groups, 3)
	assert.Equal(t, []string{"0", "1", "3"}, []string{flow.Groups[0].Key, flow.Groups[1].Key, flow.Groups[2].Key})
	assert.Equal(t, -63, flow.Groups[0].NetFlow)
	assert.Equal(t, 2, flow.Groups[2].Transactions)
	assert.Equal(t, queries.CashFlowSummary{TotalInflow: 580, TotalOutflow: 463, NetCashFlow: 117}, flow.Summary)
}

func TestGetCashFlow_ByCategoryFollowsReportOrder(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetCashFlowHandler(repo)

	resp, err := handler.Handle(context.Background(), &queries.GetCashFlowQuery{SessionID: sessionID})

	require.NoError(t, err)
	flow := resp.(*queries.GetCashFlowResponse)
	assert.Equal(t, queries.GroupByCategory, flow.GroupBy)
	keys := make([]string, 0, len(flow.Groups))
	for _, g := range flow.Groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"TRADING_REVENUE", "FINANCING", "TRADING_COSTS", "FUEL_COSTS", "BUSINESS_FEES"}, keys)
}

func TestGetCashFlow_UnknownGrouping(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetCashFlowHandler(repo)

	_, err := handler.Handle(context.Background(), &queries.GetCashFlowQuery{SessionID: sessionID, GroupBy: "week"})

	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
}

func TestGetTransactions_FiltersAndPages(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetTransactionsHandler(repo)
	costs := ledger.CategoryTradingCosts.String()

	resp, err := handler.Handle(context.Background(), &queries.GetTransactionsQuery{
		SessionID: sessionID,
		Limit:     2,
		OrderBy:   ledger.OrderOldestFirst,
	})
	require.NoError(t, err)
	page := resp.(*queries.GetTransactionsResponse)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Transactions, 2)
	assert.Equal(t, "PURCHASE_CARGO", page.Transactions[0].Type)
	assert.Equal(t, 950, page.Transactions[0].BalanceAfter)

	resp, err = handler.Handle(context.Background(), &queries.GetTransactionsQuery{SessionID: sessionID, Category: &costs})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.(*queries.GetTransactionsResponse).Total)
}

func TestGetTransactions_InvalidFilters(t *testing.T) {
	repo, sessionID := seedLedger(t)
	handler := queries.NewGetTransactionsHandler(repo)
	bogus := "TAXES"

	_, err := handler.Handle(context.Background(), &queries.GetTransactionsQuery{SessionID: sessionID, TransactionType: &bogus})
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))

	_, err = handler.Handle(context.Background(), &queries.GetTransactionsQuery{SessionID: "not-a-session"})
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
}

func TestListLedgerSessions(t *testing.T) {
	repo, sessionID := seedLedger(t)

	resp, err := queries.NewListLedgerSessionsHandler(repo).Handle(context.Background(), &queries.ListLedgerSessionsQuery{})

	require.NoError(t, err)
	assert.Equal(t, []string{sessionID}, resp.(*queries.ListLedgerSessionsResponse).SessionIDs)
}
