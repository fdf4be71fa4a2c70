package setup

import (
	"reflect"

	businessCommands "github.com/andrescamacho/tradewinds-go/internal/application/business/commands"
	businessQueries "github.com/andrescamacho/tradewinds-go/internal/application/business/queries"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/tradewinds-go/internal/application/ledger/commands"
	ledgerQueries "github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	manufacturingCommands "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/commands"
	manufacturingQueries "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/queries"
	"github.com/andrescamacho/tradewinds-go/internal/application/mediator"
	navigationCommands "github.com/andrescamacho/tradewinds-go/internal/application/navigation/commands"
	navigationQueries "github.com/andrescamacho/tradewinds-go/internal/application/navigation/queries"
	playerCommands "github.com/andrescamacho/tradewinds-go/internal/application/player/commands"
	playerQueries "github.com/andrescamacho/tradewinds-go/internal/application/player/queries"
	tradingCommands "github.com/andrescamacho/tradewinds-go/internal/application/trading/commands"
	tradingQueries "github.com/andrescamacho/tradewinds-go/internal/application/trading/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/domain/trading"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	runner          *common.SessionRunner
	world           *game.World
	template        game.Config
	random          common.RandomFactory
	transactionRepo ledger.TransactionRepository
	historyRepo     market.PriceHistoryRepository
	clock           shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	runner *common.SessionRunner,
	world *game.World,
	template game.Config,
	random common.RandomFactory,
	transactionRepo ledger.TransactionRepository,
	historyRepo market.PriceHistoryRepository,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		runner:          runner,
		world:           world,
		template:        template,
		random:          random,
		transactionRepo: transactionRepo,
		historyRepo:     historyRepo,
		clock:           clock,
	}
}

type registration struct {
	request interface{}
	handler mediator.RequestHandler
}

func registerAll(m mediator.Mediator, regs []registration) error {
	for _, reg := range regs {
		if err := m.Register(reflect.TypeOf(reg.request), reg.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterAll registers every command and query handler with the mediator
func (r *HandlerRegistry) RegisterAll(m mediator.Mediator) error {
	steps := []func(mediator.Mediator) error{
		r.RegisterPlayerHandlers,
		r.RegisterTradingHandlers,
		r.RegisterNavigationHandlers,
		r.RegisterBusinessHandlers,
		r.RegisterManufacturingHandlers,
		r.RegisterLedgerHandlers,
	}
	for _, step := range steps {
		if err := step(m); err != nil {
			return err
		}
	}
	return nil
}

// RegisterPlayerHandlers registers new game, status and summary
func (r *HandlerRegistry) RegisterPlayerHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&playerCommands.NewGameCommand{}, playerCommands.NewNewGameHandler(r.runner, r.world, r.template, r.random)},
		{&playerQueries.GetStatusQuery{}, playerQueries.NewGetStatusHandler(r.runner)},
		{&playerQueries.GetSummaryQuery{}, playerQueries.NewGetSummaryHandler(r.runner)},
	})
}

// RegisterTradingHandlers registers cargo trading, market views and price history
//
// RecordMarketPricesCommand is sent by the event recorder after every market regeneration;
// the history it writes feeds GetPriceHistoryQuery and FindTradeOpportunitiesQuery.
func (r *HandlerRegistry) RegisterTradingHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&tradingCommands.BuyCargoCommand{}, tradingCommands.NewBuyCargoHandler(r.runner)},
		{&tradingCommands.SellCargoCommand{}, tradingCommands.NewSellCargoHandler(r.runner)},
		{&tradingCommands.RecordMarketPricesCommand{}, tradingCommands.NewRecordMarketPricesHandler(r.historyRepo, r.clock)},
		{&tradingQueries.GetMarketQuery{}, tradingQueries.NewGetMarketHandler(r.runner)},
		{&tradingQueries.ExamineCommodityQuery{}, tradingQueries.NewExamineCommodityHandler(r.runner)},
		{&tradingQueries.GetInventoryQuery{}, tradingQueries.NewGetInventoryHandler(r.runner)},
		{&tradingQueries.GetPriceHistoryQuery{}, tradingQueries.NewGetPriceHistoryHandler(r.historyRepo, r.world.Catalog())},
		{&tradingQueries.FindTradeOpportunitiesQuery{}, tradingQueries.NewFindTradeOpportunitiesHandler(r.runner, r.historyRepo, trading.NewAnalyzer())},
	})
}

// RegisterNavigationHandlers registers travel and destination listing
func (r *HandlerRegistry) RegisterNavigationHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&navigationCommands.TravelCommand{}, navigationCommands.NewTravelHandler(r.runner)},
		{&navigationQueries.GetDestinationsQuery{}, navigationQueries.NewGetDestinationsHandler(r.runner)},
	})
}

// RegisterBusinessHandlers registers incorporation, licenses, loans and the business overview
func (r *HandlerRegistry) RegisterBusinessHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&businessCommands.IncorporateCommand{}, businessCommands.NewIncorporateHandler(r.runner)},
		{&businessCommands.PurchaseLicenseCommand{}, businessCommands.NewPurchaseLicenseHandler(r.runner)},
		{&businessCommands.ApplyLoanCommand{}, businessCommands.NewApplyLoanHandler(r.runner)},
		{&businessQueries.GetBusinessQuery{}, businessQueries.NewGetBusinessHandler(r.runner)},
	})
}

// RegisterManufacturingHandlers registers factory construction and listing
func (r *HandlerRegistry) RegisterManufacturingHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&manufacturingCommands.BuildFactoryCommand{}, manufacturingCommands.NewBuildFactoryHandler(r.runner)},
		{&manufacturingQueries.ListFactoriesQuery{}, manufacturingQueries.NewListFactoriesHandler(r.runner)},
	})
}

// RegisterLedgerHandlers registers all ledger command and query handlers with the mediator
//
// This method registers:
//   - RecordTransactionCommand → RecordTransactionHandler (one per credit movement)
//   - GetTransactionsQuery → GetTransactionsHandler
//   - GetProfitLossQuery → GetProfitLossHandler
//   - GetCashFlowQuery → GetCashFlowHandler
//   - ListLedgerSessionsQuery → ListLedgerSessionsHandler
func (r *HandlerRegistry) RegisterLedgerHandlers(m mediator.Mediator) error {
	return registerAll(m, []registration{
		{&ledgerCommands.RecordTransactionCommand{}, ledgerCommands.NewRecordTransactionHandler(r.transactionRepo, r.clock)},
		{&ledgerQueries.GetTransactionsQuery{}, ledgerQueries.NewGetTransactionsHandler(r.transactionRepo)},
		{&ledgerQueries.GetProfitLossQuery{}, ledgerQueries.NewGetProfitLossHandler(r.transactionRepo)},
		{&ledgerQueries.GetCashFlowQuery{}, ledgerQueries.NewGetCashFlowHandler(r.transactionRepo)},
		{&ledgerQueries.ListLedgerSessionsQuery{}, ledgerQueries.NewListLedgerSessionsHandler(r.transactionRepo)},
	})
}
