package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// loadSessionLedger reads every entry of a session inside an inclusive day window.
// Reports always need the whole window, so no page limit is applied.
func loadSessionLedger(
	ctx context.Context,
	repo ledger.TransactionRepository,
	rawSessionID string,
	fromDay, toDay *int,
) ([]*ledger.Transaction, error) {
	sessionID, err := parseSession(rawSessionID)
	if err != nil {
		return nil, err
	}
	if fromDay != nil && toDay != nil && *fromDay > *toDay {
		return nil, shared.NewGameError(shared.KindInvalidInput,
			"day %d comes after day %d", *fromDay, *toDay)
	}

	entries, err := repo.FindBySession(ctx, sessionID, ledger.QueryOptions{
		FromDay: fromDay,
		ToDay:   toDay,
		OrderBy: ledger.OrderOldestFirst,
	})
	if err != nil {
		return nil, fmt.Errorf("reading ledger of session %s: %w", rawSessionID, err)
	}
	return entries, nil
}

func parseSession(raw string) (shared.SessionID, error) {
	sessionID, err := shared.ParseSessionID(raw)
	if err != nil {
		return shared.SessionID{}, shared.NewGameError(shared.KindInvalidInput, "%q is not a session id", raw)
	}
	return sessionID, nil
}

// describePeriod renders a day window for report headers
func describePeriod(fromDay, toDay *int) string {
	switch {
	case fromDay != nil && toDay != nil:
		return fmt.Sprintf("day %d to day %d", *fromDay, *toDay)
	case fromDay != nil:
		return fmt.Sprintf("from day %d", *fromDay)
	case toDay != nil:
		return fmt.Sprintf("up to day %d", *toDay)
	default:
		return "all days"
	}
}
