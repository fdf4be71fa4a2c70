package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
	"github.com/andrescamacho/tradewinds-go/internal/domain/trading"
)

// DefaultMinMargin is the minimum margin, in percent, when the query leaves it unset
const DefaultMinMargin = 10.0

// FindTradeOpportunitiesQuery ranks buy/sell pairs from the prices this captain has seen.
// Only observed markets are considered, so early in a game the list is short.
type FindTradeOpportunitiesQuery struct {
	SessionID string
	MinMargin float64
	Limit     int
}

// OpportunityDTO is one ranked route
type OpportunityDTO struct {
	CommodityID     string
	BuyAt           string
	SellAt          string
	BuyPrice        int
	SellPrice       int
	ProfitPerUnit   int
	ProfitMargin    float64
	EstimatedProfit int
	Age             int
	Score           float64
}

// FindTradeOpportunitiesResponse carries the ranked routes
type FindTradeOpportunitiesResponse struct {
	Opportunities []OpportunityDTO
}

// FindTradeOpportunitiesHandler handles the FindTradeOpportunities query
type FindTradeOpportunitiesHandler struct {
	runner      *common.SessionRunner
	historyRepo market.PriceHistoryRepository
	analyzer    *trading.Analyzer
}

// NewFindTradeOpportunitiesHandler creates a new FindTradeOpportunitiesHandler
func NewFindTradeOpportunitiesHandler(
	runner *common.SessionRunner,
	historyRepo market.PriceHistoryRepository,
	analyzer *trading.Analyzer,
) *FindTradeOpportunitiesHandler {
	if analyzer == nil {
		analyzer = trading.NewAnalyzer()
	}
	return &FindTradeOpportunitiesHandler{
		runner:      runner,
		historyRepo: historyRepo,
		analyzer:    analyzer,
	}
}

// Handle executes the FindTradeOpportunities query
func (h *FindTradeOpportunitiesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*FindTradeOpportunitiesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *FindTradeOpportunitiesQuery")
	}

	minMargin := query.MinMargin
	if minMargin == 0 {
		minMargin = DefaultMinMargin
	}

	var all []*trading.Opportunity
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		galaxy := s.World().Galaxy()
		distance := func(fromID, toID string) float64 {
			from, _ := galaxy.Location(fromID)
			to, _ := galaxy.Location(toID)
			if from == nil || to == nil {
				return 0
			}
			return galaxy.Distance(from, to)
		}
		capacity := s.Player().Cargo().Capacity()
		today := s.Player().DaysElapsed()

		for _, commodity := range s.World().Catalog().All() {
			quotes, err := h.latestQuotes(ctx, query.SessionID, commodity.ID())
			if err != nil {
				return err
			}
			opps, err := h.analyzer.Analyze(commodity.ID(), quotes, distance, capacity, minMargin, today)
			if err != nil {
				return err
			}
			all = append(all, opps...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	trading.SortByScore(all)
	if query.Limit > 0 && len(all) > query.Limit {
		all = all[:query.Limit]
	}

	dtos := make([]OpportunityDTO, len(all))
	for i, opp := range all {
		dtos[i] = OpportunityDTO{
			CommodityID:     opp.CommodityID(),
			BuyAt:           opp.BuyAt(),
			SellAt:          opp.SellAt(),
			BuyPrice:        opp.BuyPrice(),
			SellPrice:       opp.SellPrice(),
			ProfitPerUnit:   opp.ProfitPerUnit(),
			ProfitMargin:    opp.ProfitMargin(),
			EstimatedProfit: opp.EstimatedProfit(),
			Age:             opp.Age(),
			Score:           opp.Score(),
		}
	}
	return &FindTradeOpportunitiesResponse{Opportunities: dtos}, nil
}

// latestQuotes keeps the newest observation per location
func (h *FindTradeOpportunitiesHandler) latestQuotes(ctx context.Context, sessionID, commodityID string) ([]trading.Quote, error) {
	records, err := h.historyRepo.GetPriceHistory(ctx, sessionID, "", commodityID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load price history: %w", err)
	}

	seen := make(map[string]bool)
	var quotes []trading.Quote
	for _, r := range records {
		if seen[r.LocationID()] {
			continue
		}
		seen[r.LocationID()] = true
		quotes = append(quotes, trading.Quote{
			LocationID: r.LocationID(),
			Price:      r.Price(),
			Day:        r.Day(),
		})
	}
	return quotes, nil
}
