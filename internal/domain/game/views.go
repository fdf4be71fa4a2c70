package game

import (
	"github.com/andrescamacho/tradewinds-go/internal/domain/business"
	"github.com/andrescamacho/tradewinds-go/internal/domain/manufacturing"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// StatusView is the captain's log line
type StatusView struct {
	SessionID     string
	PlayerName    string
	ShipName      string
	Credits       int
	LocationID    string
	LocationName  string
	System        string
	Day           int
	CargoUsed     int
	CargoCapacity int
	VisitedCount  int
	Registered    bool
	BusinessName  string
	Reputation    int
	FactoryCount  int
	DailyIncome   int
}

// Status reports the captain's current state
func (s *Session) Status() StatusView {
	loc := s.CurrentLocation()
	return StatusView{
		SessionID:     s.id.String(),
		PlayerName:    s.player.Name(),
		ShipName:      s.player.ShipName(),
		Credits:       s.player.Credits(),
		LocationID:    loc.ID(),
		LocationName:  loc.Name(),
		System:        loc.System(),
		Day:           s.player.DaysElapsed(),
		CargoUsed:     s.player.Cargo().Units(),
		CargoCapacity: s.player.Cargo().Capacity(),
		VisitedCount:  s.player.VisitedCount(),
		Registered:    s.business.IsRegistered(),
		BusinessName:  s.business.Name(),
		Reputation:    s.business.Reputation(),
		FactoryCount:  s.factories.Len(),
		DailyIncome:   s.factories.TotalDailyIncome(),
	}
}

// MarketEntry is one priced commodity
type MarketEntry struct {
	CommodityID string
	Name        string
	Price       int
	Note        market.Note
	Held        int
}

// MarketView lists every commodity price at a location
type MarketView struct {
	LocationID   string
	LocationName string
	System       string
	Description  string
	Entries      []MarketEntry
}

// Market returns the price board of a location; an empty id means the current location.
// Other locations report the prices seen on the last visit.
func (s *Session) Market(locationID string) (*MarketView, error) {
	loc := s.CurrentLocation()
	if locationID != "" {
		var ok bool
		loc, ok = s.resolveLocation(locationID)
		if !ok {
			return nil, shared.NewGameError(shared.KindUnknownDestination, "unknown location %q", locationID)
		}
	}

	snapshot, ok := s.board.Lookup(loc.ID())
	if !ok {
		return nil, shared.NewGameError(shared.KindInvalidInput, "no market report from %s yet", loc.Name())
	}
	entries := make([]MarketEntry, 0, s.world.catalog.Len())
	for _, commodity := range s.world.catalog.All() {
		price, _ := snapshot.Price(commodity.ID())
		entries = append(entries, MarketEntry{
			CommodityID: commodity.ID(),
			Name:        commodity.Name(),
			Price:       price,
			Note:        market.NoteFor(loc, commodity.ID()),
			Held:        s.player.Cargo().GetItemUnits(commodity.ID()),
		})
	}
	return &MarketView{
		LocationID:   loc.ID(),
		LocationName: loc.Name(),
		System:       loc.System(),
		Description:  loc.Description(),
		Entries:      entries,
	}, nil
}

// DestinationView is one reachable location
type DestinationView struct {
	LocationID string
	Name       string
	System     string
	TravelTime float64
	Days       int
	FuelCost   int
	Affordable bool
	Visited    bool
}

// Destinations lists reachable locations, shortest trip first
func (s *Session) Destinations() ([]DestinationView, error) {
	legs, err := s.world.travel.Destinations(s.player.Location())
	if err != nil {
		return nil, err
	}
	out := make([]DestinationView, 0, len(legs))
	for _, leg := range legs {
		out = append(out, DestinationView{
			LocationID: leg.To.ID(),
			Name:       leg.To.Name(),
			System:     leg.To.System(),
			TravelTime: leg.TravelTime,
			Days:       leg.Days,
			FuelCost:   leg.FuelCost,
			Affordable: s.player.CanAfford(leg.FuelCost),
			Visited:    s.player.HasVisited(leg.To.ID()),
		})
	}
	return out, nil
}

// InventoryItem is one hold entry valued at the current market
type InventoryItem struct {
	CommodityID string
	Name        string
	Units       int
	UnitPrice   int
	Value       int
}

// InventoryView is the cargo manifest
type InventoryView struct {
	Items      []InventoryItem
	UnitsUsed  int
	Capacity   int
	TotalValue int
}

// Inventory values the hold at current local prices
func (s *Session) Inventory() InventoryView {
	snapshot := s.board.Snapshot(s.CurrentLocation())
	view := InventoryView{
		UnitsUsed: s.player.Cargo().Units(),
		Capacity:  s.player.Cargo().Capacity(),
	}
	for _, item := range s.player.Cargo().Manifest() {
		price, _ := snapshot.Price(item.Commodity)
		name := item.Commodity
		if commodity, ok := s.world.catalog.Get(item.Commodity); ok {
			name = commodity.Name()
		}
		value := price * item.Units
		view.Items = append(view.Items, InventoryItem{
			CommodityID: item.Commodity,
			Name:        name,
			Units:       item.Units,
			UnitPrice:   price,
			Value:       value,
		})
		view.TotalValue += value
	}
	return view
}

// CommodityView describes one commodity from the current location's perspective
type CommodityView struct {
	ID          string
	Name        string
	Description string
	BasePrice   int
	Volatility  float64
	LocalPrice  int
	Note        market.Note
	Held        int
	MaxBuyable  int
}

// Examine describes a commodity at the current location
func (s *Session) Examine(commodityQuery string) (*CommodityView, error) {
	commodity, err := s.resolveCommodity(commodityQuery)
	if err != nil {
		return nil, err
	}
	price := s.currentPrice(commodity.ID())
	return &CommodityView{
		ID:          commodity.ID(),
		Name:        commodity.Name(),
		Description: commodity.Description(),
		BasePrice:   commodity.BasePrice(),
		Volatility:  commodity.Volatility(),
		LocalPrice:  price,
		Note:        market.NoteFor(s.CurrentLocation(), commodity.ID()),
		Held:        s.player.Cargo().GetItemUnits(commodity.ID()),
		MaxBuyable:  s.player.MaxBuyable(price),
	}, nil
}

// BusinessView summarizes the company
type BusinessView struct {
	Registered        bool
	Name              string
	Reputation        int
	Standing          business.Standing
	Licenses          []business.License
	AvailableLicenses []business.License
	Loans             []*business.Loan
	LoanTerms         business.LoanTier
	TotalDebt         int
	IncorporationCost int
}

// BusinessOverview reports the company's state and offers
func (s *Session) BusinessOverview() BusinessView {
	view := BusinessView{
		Registered:        s.business.IsRegistered(),
		Name:              s.business.Name(),
		Reputation:        s.business.Reputation(),
		Standing:          s.business.Standing(),
		Loans:             s.business.Loans(),
		LoanTerms:         s.business.LoanTerms(),
		TotalDebt:         s.business.TotalDebt(),
		IncorporationCost: s.business.Policy().IncorporationCost,
	}
	for _, l := range business.Licenses() {
		if s.business.HasLicense(l.ID) {
			view.Licenses = append(view.Licenses, l)
		} else {
			view.AvailableLicenses = append(view.AvailableLicenses, l)
		}
	}
	return view
}

// FactoryView is one owned factory
type FactoryView struct {
	LocationID   string
	LocationName string
	System       string
	TypeName     string
	Produces     string
	DailyIncome  int
	DaysActive   int
	Suitable     bool
}

// FactoriesView lists owned factories and what suits the current location
type FactoriesView struct {
	Factories        []FactoryView
	TotalDailyIncome int
	SuitableHere     []manufacturing.FactoryType
	BuiltHere        bool
}

// ListFactories returns owned factories sorted by location id
func (s *Session) ListFactories() FactoriesView {
	here := s.CurrentLocation()
	view := FactoriesView{
		TotalDailyIncome: s.factories.TotalDailyIncome(),
		SuitableHere:     manufacturing.Suitability(here),
		BuiltHere:        s.factories.Has(here.ID()),
	}
	for _, f := range s.factories.Factories() {
		loc, _ := s.world.galaxy.Location(f.LocationID())
		view.Factories = append(view.Factories, FactoryView{
			LocationID:   f.LocationID(),
			LocationName: loc.Name(),
			System:       loc.System(),
			TypeName:     f.Type().Name,
			Produces:     f.Produces(),
			DailyIncome:  f.DailyIncome(),
			DaysActive:   f.DaysActive(),
			Suitable:     f.Suitable(),
		})
	}
	return view
}

// SummaryView is the end-of-game report
type SummaryView struct {
	PlayerName      string
	ShipName        string
	Credits         int
	StartingCredits int
	NetProfit       int
	Days            int
	Visited         int
	FactoryCount    int
	TotalDebt       int
	Reputation      int
}

// Summary reports final statistics
func (s *Session) Summary() SummaryView {
	return SummaryView{
		PlayerName:      s.player.Name(),
		ShipName:        s.player.ShipName(),
		Credits:         s.player.Credits(),
		StartingCredits: s.player.StartingCredits(),
		NetProfit:       s.player.NetProfit(),
		Days:            s.player.DaysElapsed(),
		Visited:         s.player.VisitedCount(),
		FactoryCount:    s.factories.Len(),
		TotalDebt:       s.business.TotalDebt(),
		Reputation:      s.business.Reputation(),
	}
}
