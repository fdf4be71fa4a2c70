package manufacturing

import (
	"sort"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

const (
	// ConstructionReputationBonus is granted per factory built
	ConstructionReputationBonus = 10
	// IncomeReputationBonus is granted once per accrual that pays anything
	IncomeReputationBonus = 1
)

// Purse is the credit balance factories are paid from and into
type Purse interface {
	Credits() int
	Debit(amount int) error
	Credit(amount int) error
}

// Owner gates construction and collects reputation
type Owner interface {
	RequireRegistered() error
	AddReputation(delta int)
}

// Portfolio holds at most one factory per location
type Portfolio struct {
	factories map[string]*Factory
}

// NewPortfolio creates an empty portfolio
func NewPortfolio() *Portfolio {
	return &Portfolio{factories: make(map[string]*Factory)}
}

// Build constructs a factory of typeID at site.
// Failure order: NotRegistered, InvalidInput for an unknown type, AlreadyBuilt, InsufficientFunds.
func (p *Portfolio) Build(purse Purse, owner Owner, site Site, typeID string, day int) (*Factory, error) {
	if err := owner.RequireRegistered(); err != nil {
		return nil, err
	}
	ft, ok := LookupFactoryType(typeID)
	if !ok {
		return nil, shared.NewGameError(shared.KindInvalidInput, "unknown factory type %q, choose food, electronics or mining", typeID)
	}
	if _, exists := p.factories[site.ID()]; exists {
		return nil, shared.NewGameError(shared.KindAlreadyBuilt, "you already have a factory at %s", site.ID())
	}
	if purse.Credits() < ft.Cost {
		return nil, shared.NewInsufficientFundsError(ft.Cost, purse.Credits())
	}
	if err := purse.Debit(ft.Cost); err != nil {
		return nil, err
	}

	factory := &Factory{
		locationID:  site.ID(),
		factoryType: ft,
		dailyIncome: ft.IncomeAt(site),
		builtOnDay:  day,
		suitable:    ft.SuitableAt(site),
	}
	p.factories[site.ID()] = factory
	owner.AddReputation(ConstructionReputationBonus)
	return factory, nil
}

// AccrueIncome pays every factory for days elapsed days and returns the total paid.
// Reputation rises once per call when anything was paid.
func (p *Portfolio) AccrueIncome(purse Purse, owner Owner, days int) (int, error) {
	if days <= 0 || len(p.factories) == 0 {
		return 0, nil
	}
	total := 0
	for _, f := range p.factories {
		total += f.dailyIncome * days
	}
	if err := purse.Credit(total); err != nil {
		return 0, err
	}
	for _, f := range p.factories {
		f.daysActive += days
	}
	if total > 0 {
		owner.AddReputation(IncomeReputationBonus)
	}
	return total, nil
}

// Has reports whether a factory stands at the location
func (p *Portfolio) Has(locationID string) bool {
	_, ok := p.factories[locationID]
	return ok
}

// Get returns the factory at a location
func (p *Portfolio) Get(locationID string) (*Factory, bool) {
	f, ok := p.factories[locationID]
	return f, ok
}

// Len returns the number of factories owned
func (p *Portfolio) Len() int {
	return len(p.factories)
}

// Factories returns every factory sorted by location id
func (p *Portfolio) Factories() []*Factory {
	out := make([]*Factory, 0, len(p.factories))
	for _, f := range p.factories {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].locationID < out[j].locationID })
	return out
}

// TotalDailyIncome sums the daily income of every factory
func (p *Portfolio) TotalDailyIncome() int {
	total := 0
	for _, f := range p.factories {
		total += f.dailyIncome
	}
	return total
}
