package trading

import (
	"errors"
	"fmt"
)

// Quote is the most recent observed price of a commodity at a location
type Quote struct {
	LocationID string
	Price      int
	Day        int
}

// Opportunity is a buy-here, sell-there pair built from observed prices.
// Prices may be stale; Age is how many days old the older quote is.
type Opportunity struct {
	commodityID     string
	buyAt           string
	sellAt          string
	buyPrice        int
	sellPrice       int
	profitPerUnit   int
	profitMargin    float64 // (profitPerUnit / buyPrice) × 100
	distance        float64
	age             int
	cargoCapacity   int
	estimatedProfit int
	score           float64
}

// NewOpportunity validates a quote pair and derives profit figures
func NewOpportunity(commodityID string, buy, sell Quote, distance float64, cargoCapacity, today int) (*Opportunity, error) {
	if commodityID == "" {
		return nil, errors.New("commodity id required")
	}
	if buy.LocationID == "" || sell.LocationID == "" {
		return nil, errors.New("buy and sell locations required")
	}
	if buy.LocationID == sell.LocationID {
		return nil, errors.New("buy and sell locations must differ")
	}
	if buy.Price <= 0 || sell.Price <= 0 {
		return nil, errors.New("prices must be positive")
	}
	if sell.Price <= buy.Price {
		return nil, fmt.Errorf("no profit: sell price (%d) <= buy price (%d)", sell.Price, buy.Price)
	}
	if cargoCapacity <= 0 {
		return nil, ErrInvalidCargoCapacity
	}

	profitPerUnit := sell.Price - buy.Price
	age := today - min(buy.Day, sell.Day)
	if age < 0 {
		age = 0
	}

	return &Opportunity{
		commodityID:     commodityID,
		buyAt:           buy.LocationID,
		sellAt:          sell.LocationID,
		buyPrice:        buy.Price,
		sellPrice:       sell.Price,
		profitPerUnit:   profitPerUnit,
		profitMargin:    float64(profitPerUnit) / float64(buy.Price) * 100,
		distance:        distance,
		age:             age,
		cargoCapacity:   cargoCapacity,
		estimatedProfit: profitPerUnit * cargoCapacity,
	}, nil
}

func (o *Opportunity) CommodityID() string    { return o.commodityID }
func (o *Opportunity) BuyAt() string          { return o.buyAt }
func (o *Opportunity) SellAt() string         { return o.sellAt }
func (o *Opportunity) BuyPrice() int          { return o.buyPrice }
func (o *Opportunity) SellPrice() int         { return o.sellPrice }
func (o *Opportunity) ProfitPerUnit() int     { return o.profitPerUnit }
func (o *Opportunity) ProfitMargin() float64  { return o.profitMargin }
func (o *Opportunity) Distance() float64      { return o.distance }
func (o *Opportunity) Age() int               { return o.age }
func (o *Opportunity) CargoCapacity() int     { return o.cargoCapacity }
func (o *Opportunity) EstimatedProfit() int   { return o.estimatedProfit }
func (o *Opportunity) Score() float64         { return o.score }
func (o *Opportunity) SetScore(score float64) { o.score = score }

// IsViable reports whether the margin clears the threshold
func (o *Opportunity) IsViable(minMargin float64) bool {
	return o.profitMargin >= minMargin
}
