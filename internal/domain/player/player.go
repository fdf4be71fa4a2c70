package player

import (
	"fmt"
	"sort"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

const (
	// DefaultStartingCredits is the purse of a new captain
	DefaultStartingCredits = 1000
	// DefaultCargoCapacity is the hold size of a new ship
	DefaultCargoCapacity = 50
)

// Player is the captain's mutable state.
//
// Invariants:
// - credits never go negative; every debit is checked before mutation
// - cargo units never exceed capacity
// - daysElapsed never decreases and visited only grows
type Player struct {
	name            string
	shipName        string
	credits         int
	startingCredits int
	location        string
	cargo           *shared.Cargo
	daysElapsed     int
	visited         map[string]bool
}

// NewPlayer creates a captain docked at home with an empty hold
func NewPlayer(name, shipName string, credits, cargoCapacity int, home string) (*Player, error) {
	if name == "" {
		return nil, shared.NewGameError(shared.KindInvalidInput, "player name cannot be empty")
	}
	if shipName == "" {
		return nil, shared.NewGameError(shared.KindInvalidInput, "ship name cannot be empty")
	}
	if credits < 0 {
		return nil, shared.NewGameError(shared.KindInvalidInput, "starting credits cannot be negative")
	}
	if home == "" {
		return nil, shared.NewGameError(shared.KindInvalidInput, "home location cannot be empty")
	}
	cargo, err := shared.NewCargo(cargoCapacity)
	if err != nil {
		return nil, shared.NewGameError(shared.KindInvalidInput, "%v", err)
	}

	return &Player{
		name:            name,
		shipName:        shipName,
		credits:         credits,
		startingCredits: credits,
		location:        home,
		cargo:           cargo,
		visited:         map[string]bool{home: true},
	}, nil
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) ShipName() string {
	return p.shipName
}

func (p *Player) Credits() int {
	return p.credits
}

func (p *Player) StartingCredits() int {
	return p.startingCredits
}

func (p *Player) Location() string {
	return p.location
}

func (p *Player) DaysElapsed() int {
	return p.daysElapsed
}

// Cargo exposes the hold for read access
func (p *Player) Cargo() *shared.Cargo {
	return p.cargo
}

// HasVisited reports whether the captain has ever docked at the location
func (p *Player) HasVisited(locationID string) bool {
	return p.visited[locationID]
}

// VisitedCount returns the number of distinct locations visited, home included
func (p *Player) VisitedCount() int {
	return len(p.visited)
}

// Visited returns visited location ids sorted
func (p *Player) Visited() []string {
	ids := make([]string, 0, len(p.visited))
	for id := range p.visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NetProfit is credits gained or lost since the game started
func (p *Player) NetProfit() int {
	return p.credits - p.startingCredits
}

// CanAfford checks if the captain holds at least amount credits
func (p *Player) CanAfford(amount int) bool {
	return p.credits >= amount
}

// Debit removes credits, failing without mutation when the purse is short
func (p *Player) Debit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("debit amount cannot be negative: %d", amount)
	}
	if p.credits < amount {
		return shared.NewInsufficientFundsError(amount, p.credits)
	}
	p.credits -= amount
	return nil
}

// Credit adds credits
func (p *Player) Credit(amount int) error {
	if amount < 0 {
		return fmt.Errorf("credit amount cannot be negative: %d", amount)
	}
	p.credits += amount
	return nil
}

// ArriveAt moves the captain to a location after the given number of days.
// Returns true on the first visit.
func (p *Player) ArriveAt(locationID string, days int) bool {
	if days > 0 {
		p.daysElapsed += days
	}
	p.location = locationID
	first := !p.visited[locationID]
	p.visited[locationID] = true
	return first
}

// MaxBuyable is the largest quantity affordable at price that also fits the hold
func (p *Player) MaxBuyable(price int) int {
	if price <= 0 {
		return 0
	}
	return min(p.credits/price, p.cargo.AvailableCapacity())
}

// Buy debits price*quantity and loads the cargo as one step.
// Failure order: InsufficientFunds when nothing is affordable, CargoFull when the hold is full,
// then InvalidQuantity when quantity is outside [1, MaxBuyable].
func (p *Player) Buy(commodityID string, price, quantity int) (*TradeReceipt, error) {
	maxAffordable := 0
	if price > 0 {
		maxAffordable = p.credits / price
	}
	maxSpace := p.cargo.AvailableCapacity()

	if maxAffordable == 0 {
		return nil, shared.NewInsufficientFundsError(price, p.credits)
	}
	if maxSpace == 0 {
		return nil, shared.NewGameError(shared.KindCargoFull, "cargo hold is full (%d/%d)", p.cargo.Units(), p.cargo.Capacity())
	}
	limit := min(maxAffordable, maxSpace)
	if quantity < 1 || quantity > limit {
		return nil, shared.NewGameError(shared.KindInvalidQuantity, "can buy between 1 and %d units of %s, asked for %d", limit, commodityID, quantity)
	}

	total := price * quantity
	if err := p.cargo.Load(commodityID, quantity); err != nil {
		return nil, shared.NewGameError(shared.KindCargoFull, "%v", err)
	}
	p.credits -= total

	return &TradeReceipt{
		Commodity:    commodityID,
		Quantity:     quantity,
		UnitPrice:    price,
		Total:        total,
		CreditsAfter: p.credits,
	}, nil
}

// Sell credits price*quantity and unloads the cargo.
// Failure order: NothingToSell when none is held, then InvalidQuantity outside [1, held].
func (p *Player) Sell(commodityID string, price, quantity int) (*TradeReceipt, error) {
	held := p.cargo.GetItemUnits(commodityID)
	if held == 0 {
		return nil, shared.NewGameError(shared.KindNothingToSell, "no %s in the hold", commodityID)
	}
	if quantity < 1 || quantity > held {
		return nil, shared.NewGameError(shared.KindInvalidQuantity, "can sell between 1 and %d units of %s, asked for %d", held, commodityID, quantity)
	}

	if err := p.cargo.Unload(commodityID, quantity); err != nil {
		return nil, shared.NewGameError(shared.KindInvalidQuantity, "%v", err)
	}
	total := price * quantity
	p.credits += total

	return &TradeReceipt{
		Commodity:    commodityID,
		Quantity:     quantity,
		UnitPrice:    price,
		Total:        total,
		CreditsAfter: p.credits,
	}, nil
}

// TradeReceipt describes a completed buy or sell
type TradeReceipt struct {
	Commodity    string
	Quantity     int
	UnitPrice    int
	Total        int
	CreditsAfter int
}
