package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
)

// GetDestinationsQuery lists where the captain can fly from here
type GetDestinationsQuery struct {
	SessionID string
}

// GetDestinationsResponse lists destinations sorted by travel time
type GetDestinationsResponse struct {
	From         string
	Credits      int
	Destinations []game.DestinationView
}

// GetDestinationsHandler handles the GetDestinations query
type GetDestinationsHandler struct {
	runner *common.SessionRunner
}

// NewGetDestinationsHandler creates a new GetDestinationsHandler
func NewGetDestinationsHandler(runner *common.SessionRunner) *GetDestinationsHandler {
	return &GetDestinationsHandler{runner: runner}
}

// Handle executes the GetDestinations query
func (h *GetDestinationsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetDestinationsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetDestinationsQuery")
	}

	var response GetDestinationsResponse
	err := h.runner.Run(ctx, query.SessionID, func(s *game.Session) error {
		destinations, err := s.Destinations()
		if err != nil {
			return err
		}
		response.From = s.Player().Location()
		response.Credits = s.Player().Credits()
		response.Destinations = destinations
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}
