package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

func newSession(t *testing.T, credits int, fuelRate float64) *game.Session {
	t.Helper()
	world, err := game.NewDefaultWorld(navigation.TravelModeExplicit, fuelRate)
	require.NoError(t, err)
	cfg := game.DefaultConfig("Vega", "Wanderer")
	cfg.StartingCredits = credits
	s, err := game.NewSession(shared.NewSessionID(), world, cfg, &shared.FixedRandomSource{Value: 0.5})
	require.NoError(t, err)
	return s
}

func TestNewSession_StartsAtHomeWithPricedMarket(t *testing.T) {
	s := newSession(t, 1000, 25)

	status := s.Status()
	assert.Equal(t, 1000, status.Credits)
	assert.Equal(t, "earth_station", status.LocationID)
	assert.Equal(t, 0, status.CargoUsed)
	assert.Equal(t, 50, status.CargoCapacity)
	assert.False(t, status.Registered)

	events := s.DrainEvents()
	require.Len(t, events.Regenerations, 1)
	assert.Equal(t, "earth_station", events.Regenerations[0].Snapshot.LocationID())
	assert.True(t, s.DrainEvents().IsEmpty())
}

func TestNewSession_RejectsUnknownHome(t *testing.T) {
	world, err := game.NewDefaultWorld(navigation.TravelModeExplicit, 25)
	require.NoError(t, err)
	cfg := game.DefaultConfig("Vega", "Wanderer")
	cfg.HomeLocation = "atlantis"

	_, err = game.NewSession(shared.NewSessionID(), world, cfg, &shared.FixedRandomSource{Value: 0.5})

	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestBuy_FiveUnitsAtTen(t *testing.T) {
	// Arrange
	s := newSession(t, 1000, 25)
	s.DrainEvents()

	// Act
	receipt, err := s.Buy("food", 5)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 10, receipt.UnitPrice)
	assert.Equal(t, 950, s.Status().Credits)
	assert.Equal(t, 5, s.Status().CargoUsed)

	events := s.DrainEvents()
	require.Len(t, events.Movements, 1)
	assert.Equal(t, ledger.TransactionTypePurchaseCargo, events.Movements[0].Type)
	assert.Equal(t, -50, events.Movements[0].Amount)
	assert.Equal(t, 950, events.Movements[0].BalanceAfter)
}

func TestBuy_UnknownCommodity(t *testing.T) {
	s := newSession(t, 1000, 25)

	_, err := s.Buy("spice", 1)

	assert.ErrorIs(t, err, shared.ErrUnknownCommodity)
}

func TestBuy_ResolvesDisplayName(t *testing.T) {
	s := newSession(t, 1000, 25)

	receipt, err := s.Buy("raw materials", 2)

	require.NoError(t, err)
	assert.Equal(t, "materials", receipt.Commodity)
}

func TestSell_FailureLeavesNoEvents(t *testing.T) {
	s := newSession(t, 1000, 25)
	s.DrainEvents()

	_, err := s.Sell("food", 1)

	assert.ErrorIs(t, err, shared.ErrNothingToSell)
	assert.True(t, s.DrainEvents().IsEmpty())
}

func TestTravel_InsufficientFundsLeavesStateUnchanged(t *testing.T) {
	// Arrange: fuel rate 40 makes the one-day hop to Europa cost 40
	s := newSession(t, 30, 40)
	s.DrainEvents()
	before := s.Status()

	// Act
	_, err := s.Travel("europa_station")

	// Assert
	assert.ErrorIs(t, err, shared.ErrInsufficientFunds)
	after := s.Status()
	assert.Equal(t, before.Credits, after.Credits)
	assert.Equal(t, before.LocationID, after.LocationID)
	assert.Equal(t, before.Day, after.Day)
	assert.Equal(t, before.VisitedCount, after.VisitedCount)
	assert.True(t, s.DrainEvents().IsEmpty())
}

func TestTravel_Success(t *testing.T) {
	// Arrange
	s := newSession(t, 1000, 25)
	s.DrainEvents()

	// Act
	report, err := s.Travel("titan")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "earth_station", report.From)
	assert.Equal(t, "titan_refinery", report.To)
	assert.Equal(t, 38, report.FuelCost)
	assert.Equal(t, 2, report.Days)
	assert.True(t, report.FirstVisit)
	assert.Zero(t, report.Income)

	status := s.Status()
	assert.Equal(t, 962, status.Credits)
	assert.Equal(t, 2, status.Day)
	assert.Equal(t, 2, status.VisitedCount)

	events := s.DrainEvents()
	require.Len(t, events.Movements, 1)
	assert.Equal(t, ledger.TransactionTypeFuel, events.Movements[0].Type)
	require.Len(t, events.Regenerations, 1)
	assert.Equal(t, "titan_refinery", events.Regenerations[0].Snapshot.LocationID())
	assert.Equal(t, 2, events.Regenerations[0].Day)
}

func TestTravel_RouteFailures(t *testing.T) {
	s := newSession(t, 1000, 25)

	_, err := s.Travel("andromeda")
	assert.ErrorIs(t, err, shared.ErrUnknownDestination)

	_, err = s.Travel("kepler_paradise")
	assert.ErrorIs(t, err, shared.ErrNoRoute)

	_, err = s.Travel("earth_station")
	assert.ErrorIs(t, err, shared.ErrNoRoute)
}

func TestIncorporate_WithExactlyFiveThousand(t *testing.T) {
	s := newSession(t, 5000, 25)

	err := s.Incorporate("")

	require.NoError(t, err)
	status := s.Status()
	assert.Equal(t, 0, status.Credits)
	assert.Equal(t, 10, status.Reputation)
	assert.True(t, status.Registered)
	assert.Equal(t, "Vega Trading Corp", status.BusinessName)
}

func TestFactory_AffinityBonusAndTravelIncome(t *testing.T) {
	// Arrange
	s := newSession(t, 200000, 25)
	require.NoError(t, s.Incorporate("Red Dust Industries"))
	_, err := s.Travel("mars_colony")
	require.NoError(t, err)

	// Act
	factory, err := s.BuildFactory("electronics")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 18000, factory.DailyIncome())
	assert.Equal(t, 20, s.Status().Reputation)

	s.DrainEvents()
	creditsBefore := s.Status().Credits
	report, err := s.Travel("europa_station")
	require.NoError(t, err)
	assert.Equal(t, 18000, report.Income)
	assert.Equal(t, creditsBefore-20+18000, s.Status().Credits)
	assert.Equal(t, 21, s.Status().Reputation)

	events := s.DrainEvents()
	require.Len(t, events.Movements, 2)
	assert.Equal(t, ledger.TransactionTypeFuel, events.Movements[0].Type)
	assert.Equal(t, ledger.TransactionTypeFactoryIncome, events.Movements[1].Type)

	view := s.ListFactories()
	require.Len(t, view.Factories, 1)
	assert.Equal(t, 1, view.Factories[0].DaysActive)
	assert.Equal(t, 18000, view.TotalDailyIncome)
}

func TestBuildFactoryFor_MapsCommodity(t *testing.T) {
	s := newSession(t, 200000, 25)
	require.NoError(t, s.Incorporate("Acme"))

	factory, err := s.BuildFactoryFor("metals")
	require.NoError(t, err)
	assert.Equal(t, "mining", factory.Type().ID)
	assert.Equal(t, 8000, factory.DailyIncome())

	_, err = s.BuildFactoryFor("weapons")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestApplyLoan_RecordsMovement(t *testing.T) {
	s := newSession(t, 5000, 25)
	require.NoError(t, s.Incorporate("Acme"))
	s.DrainEvents()

	loan, err := s.ApplyLoan(20000)

	require.NoError(t, err)
	assert.Equal(t, 23000, loan.Remaining())
	assert.Equal(t, 20000, s.Status().Credits)
	events := s.DrainEvents()
	require.Len(t, events.Movements, 1)
	assert.Equal(t, ledger.TransactionTypeLoanDisbursement, events.Movements[0].Type)
	assert.Equal(t, 20000, events.Movements[0].Amount)
}

func TestReadOnlyViews(t *testing.T) {
	s := newSession(t, 1000, 25)
	_, err := s.Buy("food", 3)
	require.NoError(t, err)

	market, err := s.Market("")
	require.NoError(t, err)
	assert.Equal(t, "earth_station", market.LocationID)
	assert.Len(t, market.Entries, 10)

	inventory := s.Inventory()
	require.Len(t, inventory.Items, 1)
	assert.Equal(t, 30, inventory.TotalValue)

	destinations, err := s.Destinations()
	require.NoError(t, err)
	require.Len(t, destinations, 3)
	assert.Equal(t, "mars_colony", destinations[0].LocationID)
	assert.True(t, destinations[0].Affordable)

	examined, err := s.Examine("electronics")
	require.NoError(t, err)
	assert.Equal(t, 70, examined.LocalPrice)

	summary := s.Summary()
	assert.Equal(t, -30, summary.NetProfit)
	assert.Equal(t, 1, summary.Visited)

	_, err = s.Market("andromeda")
	assert.ErrorIs(t, err, shared.ErrUnknownDestination)
}

func TestMarket_RemoteLocationsServeOnlyRecordedPrices(t *testing.T) {
	s := newSession(t, 1000, 25)
	s.DrainEvents()

	_, err := s.Market("kepler_paradise")
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
	assert.True(t, s.DrainEvents().IsEmpty(), "reading a market never prices a location")

	_, err = s.Travel("mars_colony")
	require.NoError(t, err)
	require.Len(t, s.DrainEvents().Regenerations, 1)

	home, err := s.Market("earth_station")
	require.NoError(t, err)
	assert.Equal(t, "earth_station", home.LocationID)
	assert.True(t, s.DrainEvents().IsEmpty())
}
