package game

import (
	"fmt"
	"sync"

	"github.com/andrescamacho/tradewinds-go/internal/domain/business"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/manufacturing"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
	"github.com/andrescamacho/tradewinds-go/internal/domain/player"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Config describes a new game
type Config struct {
	PlayerName      string
	ShipName        string
	StartingCredits int
	CargoCapacity   int
	HomeLocation    string
	Business        business.Policy
}

// DefaultConfig returns the standard new-game settings for a captain
func DefaultConfig(playerName, shipName string) Config {
	return Config{
		PlayerName:      playerName,
		ShipName:        shipName,
		StartingCredits: player.DefaultStartingCredits,
		CargoCapacity:   player.DefaultCargoCapacity,
		HomeLocation:    navigation.HomeLocationID,
		Business:        business.DefaultPolicy(),
	}
}

// Session is one captain's game: player, business, factories and market board.
//
// Every public operation either fully succeeds or returns a GameError with no state change.
// Callers serialize access with Lock/Unlock; the session itself never spawns goroutines.
type Session struct {
	mu sync.Mutex

	id        shared.SessionID
	world     *World
	player    *player.Player
	business  *business.Business
	factories *manufacturing.Portfolio
	board     *market.Board
	events    Events
}

// NewSession starts a game at the home location and prices its market
func NewSession(id shared.SessionID, world *World, cfg Config, random shared.RandomSource) (*Session, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("session id cannot be empty")
	}
	home, ok := world.galaxy.Location(cfg.HomeLocation)
	if !ok {
		return nil, shared.NewGameError(shared.KindInvalidInput, "unknown home location %q", cfg.HomeLocation)
	}
	p, err := player.NewPlayer(cfg.PlayerName, cfg.ShipName, cfg.StartingCredits, cfg.CargoCapacity, home.ID())
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:        id,
		world:     world,
		player:    p,
		business:  business.NewBusiness(cfg.Business),
		factories: manufacturing.NewPortfolio(),
		board:     market.NewBoard(market.NewPricingEngine(world.catalog, random)),
	}
	s.regenerate(home)
	return s, nil
}

// Lock takes the session's single coarse lock
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}

func (s *Session) ID() shared.SessionID {
	return s.id
}

func (s *Session) World() *World {
	return s.world
}

func (s *Session) Player() *player.Player {
	return s.player
}

func (s *Session) Business() *business.Business {
	return s.business
}

func (s *Session) Factories() *manufacturing.Portfolio {
	return s.factories
}

// DrainEvents returns and clears the events emitted since the last drain
func (s *Session) DrainEvents() Events {
	events := s.events
	s.events = Events{}
	return events
}

// CurrentLocation returns the location the captain is docked at
func (s *Session) CurrentLocation() *navigation.Location {
	loc, _ := s.world.galaxy.Location(s.player.Location())
	return loc
}

// Buy purchases quantity units of a commodity at the current market price
func (s *Session) Buy(commodityQuery string, quantity int) (*player.TradeReceipt, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return nil, err
	}
	price := s.currentPrice(commodity.ID())

	before := s.player.Credits()
	receipt, err := s.player.Buy(commodity.ID(), price, quantity)
	if err != nil {
		return nil, err
	}
	s.track(ledger.TransactionTypePurchaseCargo, before,
		fmt.Sprintf("Bought %d %s at %d", quantity, commodity.Name(), price),
		"commodity", commodity.ID())
	return receipt, nil
}

// Sell sells quantity units of a commodity at the current market price
func (s *Session) Sell(commodityQuery string, quantity int) (*player.TradeReceipt, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return nil, err
	}
	price := s.currentPrice(commodity.ID())

	before := s.player.Credits()
	receipt, err := s.player.Sell(commodity.ID(), price, quantity)
	if err != nil {
		return nil, err
	}
	s.track(ledger.TransactionTypeSellCargo, before,
		fmt.Sprintf("Sold %d %s at %d", quantity, commodity.Name(), price),
		"commodity", commodity.ID())
	return receipt, nil
}

// MaxBuyable is how many units of a commodity the captain can afford and carry here
func (s *Session) MaxBuyable(commodityQuery string) (int, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return 0, err
	}
	return s.player.MaxBuyable(s.currentPrice(commodity.ID())), nil
}

// Held returns the units of a commodity in the hold
func (s *Session) Held(commodityQuery string) (int, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return 0, err
	}
	return s.player.Cargo().GetItemUnits(commodity.ID()), nil
}

// TravelReport describes a completed trip
type TravelReport struct {
	From       string
	To         string
	TravelTime float64
	Days       int
	FuelCost   int
	Income     int
	FirstVisit bool
}

// Travel flies to a destination.
// On success, in order: fuel is debited, days advance and the destination is marked visited,
// factories are paid for the days travelled, and the destination market is regenerated.
func (s *Session) Travel(destination string) (*TravelReport, error) {
	dest, ok := s.resolveLocation(destination)
	if !ok {
		return nil, shared.NewGameError(shared.KindUnknownDestination, "I don't know how to get to %q", destination)
	}
	leg, err := s.world.travel.Plan(s.player.Location(), dest.ID())
	if err != nil {
		return nil, err
	}
	if !s.player.CanAfford(leg.FuelCost) {
		return nil, shared.NewInsufficientFundsError(leg.FuelCost, s.player.Credits())
	}

	before := s.player.Credits()
	if err := s.player.Debit(leg.FuelCost); err != nil {
		return nil, err
	}
	s.track(ledger.TransactionTypeFuel, before,
		fmt.Sprintf("Fuel from %s to %s", leg.From.Name(), leg.To.Name()),
		"location", dest.ID())

	firstVisit := s.player.ArriveAt(dest.ID(), leg.Days)

	income, err := s.AccrueIncome(leg.Days)
	if err != nil {
		return nil, err
	}

	s.regenerate(dest)

	return &TravelReport{
		From:       leg.From.ID(),
		To:         dest.ID(),
		TravelTime: leg.TravelTime,
		Days:       leg.Days,
		FuelCost:   leg.FuelCost,
		Income:     income,
		FirstVisit: firstVisit,
	}, nil
}

// AccrueIncome pays every factory for days and returns the total
func (s *Session) AccrueIncome(days int) (int, error) {
	before := s.player.Credits()
	income, err := s.factories.AccrueIncome(s.player, s.business, days)
	if err != nil {
		return 0, err
	}
	s.track(ledger.TransactionTypeFactoryIncome, before,
		fmt.Sprintf("Factory income for %d days", days),
		"factory", "")
	return income, nil
}

// Incorporate registers the business
func (s *Session) Incorporate(name string) error {
	before := s.player.Credits()
	if err := s.business.Incorporate(s.player, name, s.player.Name()); err != nil {
		return err
	}
	s.track(ledger.TransactionTypeIncorporation, before,
		fmt.Sprintf("Incorporated %s", s.business.Name()),
		"business", s.business.Name())
	return nil
}

// PurchaseLicense buys a business license
func (s *Session) PurchaseLicense(licenseID string) (business.License, error) {
	before := s.player.Credits()
	license, err := s.business.PurchaseLicense(s.player, licenseID)
	if err != nil {
		return business.License{}, err
	}
	s.track(ledger.TransactionTypeLicensePurchase, before,
		fmt.Sprintf("Purchased %s", license.Name),
		"license", license.ID)
	return license, nil
}

// ApplyLoan takes a loan on the current reputation tier
func (s *Session) ApplyLoan(amount int) (*business.Loan, error) {
	before := s.player.Credits()
	loan, err := s.business.ApplyLoan(s.player, amount, s.player.DaysElapsed())
	if err != nil {
		return nil, err
	}
	s.track(ledger.TransactionTypeLoanDisbursement, before,
		fmt.Sprintf("Loan of %d at %s%%", loan.Principal(), loan.Rate().Shift(2).String()),
		"loan", "")
	return loan, nil
}

// BuildFactory constructs a factory of typeID at the current location
func (s *Session) BuildFactory(typeID string) (*manufacturing.Factory, error) {
	site := s.CurrentLocation()
	before := s.player.Credits()
	factory, err := s.factories.Build(s.player, s.business, site, typeID, s.player.DaysElapsed())
	if err != nil {
		return nil, err
	}
	s.track(ledger.TransactionTypeFactoryConstruction, before,
		fmt.Sprintf("Built %s at %s", factory.Type().Name, site.Name()),
		"factory", site.ID())
	return factory, nil
}

// BuildFactoryFor builds the factory type that automates a commodity
func (s *Session) BuildFactoryFor(commodityQuery string) (*manufacturing.Factory, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return nil, err
	}
	ft, ok := manufacturing.TypeForCommodity(commodity.ID())
	if !ok {
		return nil, shared.NewGameError(shared.KindInvalidInput,
			"cannot build a factory for %s, try food, electronics or materials", commodity.Name())
	}
	return s.BuildFactory(ft.ID)
}

func (s *Session) resolveCommodity(query string) (*market.Commodity, error) {
	commodity, ok := s.world.catalog.Resolve(query)
	if !ok {
		return nil, shared.NewGameError(shared.KindUnknownCommodity, "I don't recognize %q", query)
	}
	return commodity, nil
}

func (s *Session) resolveLocation(query string) (*navigation.Location, bool) {
	if loc, ok := s.world.galaxy.Location(query); ok {
		return loc, true
	}
	return s.world.galaxy.Resolve(query)
}

func (s *Session) currentPrice(commodityID string) int {
	price, _ := s.board.Snapshot(s.CurrentLocation()).Price(commodityID)
	return price
}

func (s *Session) regenerate(loc *navigation.Location) *market.Snapshot {
	snapshot := s.board.Regenerate(loc)
	s.events.Regenerations = append(s.events.Regenerations, MarketRegenerated{
		Snapshot: snapshot,
		Day:      s.player.DaysElapsed(),
	})
	return snapshot
}

// track emits a credit movement when credits changed since before
func (s *Session) track(t ledger.TransactionType, before int, description, relatedType, relatedID string) {
	after := s.player.Credits()
	if after == before {
		return
	}
	s.events.Movements = append(s.events.Movements, CreditMovement{
		Type:              t,
		Amount:            after - before,
		BalanceBefore:     before,
		BalanceAfter:      after,
		Day:               s.player.DaysElapsed(),
		Description:       description,
		RelatedEntityType: relatedType,
		RelatedEntityID:   relatedID,
	})
}
