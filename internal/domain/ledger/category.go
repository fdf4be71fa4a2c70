package ledger

import (
	"fmt"
	"slices"
)

// Category groups transaction types for the profit and loss and cash flow reports
type Category string

const (
	CategoryFuelCosts          Category = "FUEL_COSTS"
	CategoryTradingRevenue     Category = "TRADING_REVENUE"
	CategoryTradingCosts       Category = "TRADING_COSTS"
	CategoryBusinessFees       Category = "BUSINESS_FEES" // incorporation and licenses
	CategoryFinancing          Category = "FINANCING"     // loan principal
	CategoryFactoryInvestments Category = "FACTORY_INVESTMENTS"
	CategoryFactoryRevenue     Category = "FACTORY_REVENUE"
)

// Report order. Money coming in is listed first.
var categories = []Category{
	CategoryTradingRevenue,
	CategoryFactoryRevenue,
	CategoryFinancing,
	CategoryTradingCosts,
	CategoryFuelCosts,
	CategoryBusinessFees,
	CategoryFactoryInvestments,
}

func AllCategories() []Category {
	return slices.Clone(categories)
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return slices.Contains(categories, c)
}

// IsIncome reports whether entries in c raise the captain's credits.
// Loans count as income here even though they must be repaid.
func (c Category) IsIncome() bool {
	return c == CategoryTradingRevenue || c == CategoryFactoryRevenue || c == CategoryFinancing
}

func (c Category) IsExpense() bool {
	return c.IsValid() && !c.IsIncome()
}

func ParseCategory(s string) (Category, error) {
	if c := Category(s); c.IsValid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown ledger category %q", s)
}
