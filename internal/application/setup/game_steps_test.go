package setup_test

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	"gorm.io/gorm"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	businessCommands "github.com/andrescamacho/tradewinds-go/internal/application/business/commands"
	businessQueries "github.com/andrescamacho/tradewinds-go/internal/application/business/queries"
	ledgerQueries "github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	manufacturingCommands "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/commands"
	navigationCommands "github.com/andrescamacho/tradewinds-go/internal/application/navigation/commands"
	playerCommands "github.com/andrescamacho/tradewinds-go/internal/application/player/commands"
	playerQueries "github.com/andrescamacho/tradewinds-go/internal/application/player/queries"
	"github.com/andrescamacho/tradewinds-go/internal/application/setup"
	tradingCommands "github.com/andrescamacho/tradewinds-go/internal/application/trading/commands"
	tradingQueries "github.com/andrescamacho/tradewinds-go/internal/application/trading/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/config"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/database"
)

type gameContext struct {
	db        *gorm.DB
	app       *setup.Application
	sessionID string
	err       error
	factory   *manufacturingCommands.BuildFactoryResponse
}

func (gc *gameContext) reset() {
	if gc.db != nil {
		_ = database.Close(gc.db)
	}
	gc.db = nil
	gc.app = nil
	gc.sessionID = ""
	gc.err = nil
	gc.factory = nil
}

func (gc *gameContext) startGame(credits int, fuelRate float64) error {
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	gc.db = db

	cfg := config.Default()
	cfg.Game.StartingCredits = credits
	cfg.Game.FuelRate = fuelRate

	app, err := setup.NewApplication(setup.Dependencies{
		Config:          cfg,
		Sessions:        persistence.NewInMemorySessionRepository(),
		TransactionRepo: persistence.NewGormTransactionRepository(db),
		HistoryRepo:     persistence.NewGormMarketPriceHistoryRepository(db),
		Random: func() shared.RandomSource {
			return &shared.FixedRandomSource{Value: 0.5}
		},
	})
	if err != nil {
		return err
	}
	gc.app = app

	resp, err := app.Send(context.Background(), &playerCommands.NewGameCommand{
		PlayerName: "Vega",
		ShipName:   "Wanderer",
	})
	if err != nil {
		return err
	}
	gc.sessionID = resp.(*playerCommands.NewGameResponse).SessionID
	return nil
}

func (gc *gameContext) send(request interface{}) (interface{}, error) {
	resp, err := gc.app.Send(context.Background(), request)
	gc.err = err
	return resp, err
}

func (gc *gameContext) status() (game.StatusView, error) {
	resp, err := gc.app.Send(context.Background(), &playerQueries.GetStatusQuery{SessionID: gc.sessionID})
	if err != nil {
		return game.StatusView{}, err
	}
	return resp.(*playerQueries.GetStatusResponse).Status, nil
}

// Given steps

func (gc *gameContext) aNewGameWithStartingCredits(credits int) error {
	return gc.startGame(credits, 25)
}

func (gc *gameContext) aNewGameWithStartingCreditsAndFuelRate(credits, fuelRate int) error {
	return gc.startGame(credits, float64(fuelRate))
}

// When steps

func (gc *gameContext) theCaptainBuys(quantity int, commodity string) error {
	_, _ = gc.send(&tradingCommands.BuyCargoCommand{SessionID: gc.sessionID, Commodity: commodity, Quantity: quantity})
	return nil
}

func (gc *gameContext) theCaptainSells(quantity int, commodity string) error {
	_, _ = gc.send(&tradingCommands.SellCargoCommand{SessionID: gc.sessionID, Commodity: commodity, Quantity: quantity})
	return nil
}

func (gc *gameContext) theCaptainTravelsTo(destination string) error {
	_, _ = gc.send(&navigationCommands.TravelCommand{SessionID: gc.sessionID, Destination: destination})
	return nil
}

func (gc *gameContext) theCaptainIncorporates(name string) error {
	_, _ = gc.send(&businessCommands.IncorporateCommand{SessionID: gc.sessionID, Name: name})
	return nil
}

func (gc *gameContext) theCaptainBuildsAFactory(factoryType string) error {
	resp, err := gc.send(&manufacturingCommands.BuildFactoryCommand{SessionID: gc.sessionID, FactoryType: factoryType})
	if err == nil {
		gc.factory = resp.(*manufacturingCommands.BuildFactoryResponse)
	}
	return nil
}

// Then steps

func (gc *gameContext) theCaptainShouldHaveCredits(expected int) error {
	status, err := gc.status()
	if err != nil {
		return err
	}
	if status.Credits != expected {
		return fmt.Errorf("expected %d credits, got %d", expected, status.Credits)
	}
	return nil
}

func (gc *gameContext) theCargoHoldShouldContainUnits(expected int) error {
	status, err := gc.status()
	if err != nil {
		return err
	}
	if status.CargoUsed != expected {
		return fmt.Errorf("expected %d units in the hold, got %d", expected, status.CargoUsed)
	}
	return nil
}

func (gc *gameContext) theCaptainShouldBeAt(locationID string) error {
	status, err := gc.status()
	if err != nil {
		return err
	}
	if status.LocationID != locationID {
		return fmt.Errorf("expected captain at %s, got %s", locationID, status.LocationID)
	}
	return nil
}

func (gc *gameContext) theDayShouldBe(expected int) error {
	status, err := gc.status()
	if err != nil {
		return err
	}
	if status.Day != expected {
		return fmt.Errorf("expected day %d, got %d", expected, status.Day)
	}
	return nil
}

func (gc *gameContext) theMarketPriceOfShouldBe(commodity string, expected int) error {
	resp, err := gc.app.Send(context.Background(), &tradingQueries.ExamineCommodityQuery{SessionID: gc.sessionID, Commodity: commodity})
	if err != nil {
		return err
	}
	view := resp.(*tradingQueries.ExamineCommodityResponse).Commodity
	if view.LocalPrice != expected {
		return fmt.Errorf("expected %s at %d, got %d", commodity, expected, view.LocalPrice)
	}
	return nil
}

func (gc *gameContext) theOperationShouldFailWith(kind string) error {
	if gc.err == nil {
		return fmt.Errorf("expected %s error, got success", kind)
	}
	if got := shared.KindOf(gc.err); got.String() != kind {
		return fmt.Errorf("expected %s error, got %q (%v)", kind, got, gc.err)
	}
	return nil
}

func (gc *gameContext) theBusinessShouldBeRegisteredWithReputation(expected int) error {
	resp, err := gc.app.Send(context.Background(), &businessQueries.GetBusinessQuery{SessionID: gc.sessionID})
	if err != nil {
		return err
	}
	view := resp.(*businessQueries.GetBusinessResponse).Business
	if !view.Registered {
		return fmt.Errorf("expected business to be registered")
	}
	if view.Reputation != expected {
		return fmt.Errorf("expected reputation %d, got %d", expected, view.Reputation)
	}
	return nil
}

func (gc *gameContext) theFactoryDailyIncomeShouldBe(expected int) error {
	if gc.factory == nil {
		return fmt.Errorf("no factory was built: %v", gc.err)
	}
	if gc.factory.DailyIncome != expected {
		return fmt.Errorf("expected daily income %d, got %d", expected, gc.factory.DailyIncome)
	}
	return nil
}

func (gc *gameContext) ledgerEntries() ([]*ledgerQueries.TransactionDTO, error) {
	resp, err := gc.app.Send(context.Background(), &ledgerQueries.GetTransactionsQuery{
		SessionID: gc.sessionID,
		OrderBy:   ledger.OrderOldestFirst,
	})
	if err != nil {
		return nil, err
	}
	return resp.(*ledgerQueries.GetTransactionsResponse).Transactions, nil
}

func (gc *gameContext) theLedgerShouldBeEmpty() error {
	entries, err := gc.ledgerEntries()
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("expected an empty ledger, got %d entries", len(entries))
	}
	return nil
}

func (gc *gameContext) theLedgerShouldContain(table *godog.Table) error {
	entries, err := gc.ledgerEntries()
	if err != nil {
		return err
	}
	if len(entries) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d ledger entries, got %d", len(table.Rows)-1, len(entries))
	}

	for i, row := range table.Rows[1:] {
		entry := entries[i]
		if want := cellValue(table, row, "type"); entry.Type != want {
			return fmt.Errorf("entry %d: expected type %s, got %s", i, want, entry.Type)
		}
		amount, err := strconv.Atoi(cellValue(table, row, "amount"))
		if err != nil {
			return err
		}
		if entry.Amount != amount {
			return fmt.Errorf("entry %d: expected amount %d, got %d", i, amount, entry.Amount)
		}
		balance, err := strconv.Atoi(cellValue(table, row, "balance_after"))
		if err != nil {
			return err
		}
		if entry.BalanceAfter != balance {
			return fmt.Errorf("entry %d: expected balance %d, got %d", i, balance, entry.BalanceAfter)
		}
	}
	return nil
}

// cellValue gets a cell value from a table row by column name, using the first row as the header
func cellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func InitializeGameScenario(ctx *godog.ScenarioContext) {
	gc := &gameContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		gc.reset()
		return ctx, nil
	})

	ctx.Step(`^a new game with (\d+) starting credits$`, gc.aNewGameWithStartingCredits)
	ctx.Step(`^a new game with (\d+) starting credits and fuel rate (\d+)$`, gc.aNewGameWithStartingCreditsAndFuelRate)

	ctx.Step(`^the captain buys (\d+) "([^"]*)"$`, gc.theCaptainBuys)
	ctx.Step(`^the captain sells (\d+) "([^"]*)"$`, gc.theCaptainSells)
	ctx.Step(`^the captain travels to "([^"]*)"$`, gc.theCaptainTravelsTo)
	ctx.Step(`^the captain incorporates "([^"]*)"$`, gc.theCaptainIncorporates)
	ctx.Step(`^the captain builds a "([^"]*)" factory$`, gc.theCaptainBuildsAFactory)

	ctx.Step(`^the captain should have (\d+) credits$`, gc.theCaptainShouldHaveCredits)
	ctx.Step(`^the cargo hold should contain (\d+) units$`, gc.theCargoHoldShouldContainUnits)
	ctx.Step(`^the captain should be at "([^"]*)"$`, gc.theCaptainShouldBeAt)
	ctx.Step(`^the day should be (\d+)$`, gc.theDayShouldBe)
	ctx.Step(`^the market price of "([^"]*)" should be (\d+)$`, gc.theMarketPriceOfShouldBe)
	ctx.Step(`^the operation should fail with "([^"]*)"$`, gc.theOperationShouldFailWith)
	ctx.Step(`^the business should be registered with reputation (\d+)$`, gc.theBusinessShouldBeRegisteredWithReputation)
	ctx.Step(`^the factory daily income should be (\d+)$`, gc.theFactoryDailyIncomeShouldBe)
	ctx.Step(`^the ledger should be empty$`, gc.theLedgerShouldBeEmpty)
	ctx.Step(`^the ledger should contain:$`, gc.theLedgerShouldContain)
}
