package trading

import (
	"sort"
)

// DistanceFunc returns the travel distance between two locations
type DistanceFunc func(fromID, toID string) float64

// Analyzer pairs observed quotes into scored opportunities.
// It is stateless and deterministic.
type Analyzer struct {
	profitWeight    float64
	distancePenalty float64
	agePenalty      float64
}

// NewAnalyzer creates an analyzer with the default weights
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		profitWeight:    1.0,
		distancePenalty: 5.0,
		agePenalty:      2.0,
	}
}

// Analyze returns every viable opportunity for one commodity, best first
func (a *Analyzer) Analyze(
	commodityID string,
	quotes []Quote,
	distance DistanceFunc,
	cargoCapacity int,
	minMargin float64,
	today int,
) ([]*Opportunity, error) {
	if cargoCapacity <= 0 {
		return nil, ErrInvalidCargoCapacity
	}
	if minMargin < 0 {
		return nil, ErrInvalidMarginThreshold
	}

	var out []*Opportunity
	for _, buy := range quotes {
		for _, sell := range quotes {
			if buy.LocationID == sell.LocationID || sell.Price <= buy.Price {
				continue
			}
			opp, err := NewOpportunity(commodityID, buy, sell, distance(buy.LocationID, sell.LocationID), cargoCapacity, today)
			if err != nil || !opp.IsViable(minMargin) {
				continue
			}
			opp.SetScore(a.ScoreOpportunity(opp))
			out = append(out, opp)
		}
	}
	SortByScore(out)
	return out, nil
}

// ScoreOpportunity weighs margin against distance and quote age:
//
//	score = margin × profitWeight − distance × distancePenalty − age × agePenalty
func (a *Analyzer) ScoreOpportunity(opp *Opportunity) float64 {
	return opp.ProfitMargin()*a.profitWeight -
		opp.Distance()*a.distancePenalty -
		float64(opp.Age())*a.agePenalty
}

// SortByScore orders opportunities best first, ties broken by commodity then route
func SortByScore(opps []*Opportunity) {
	sort.SliceStable(opps, func(i, j int) bool {
		if opps[i].Score() != opps[j].Score() {
			return opps[i].Score() > opps[j].Score()
		}
		if opps[i].CommodityID() != opps[j].CommodityID() {
			return opps[i].CommodityID() < opps[j].CommodityID()
		}
		if opps[i].BuyAt() != opps[j].BuyAt() {
			return opps[i].BuyAt() < opps[j].BuyAt()
		}
		return opps[i].SellAt() < opps[j].SellAt()
	})
}
