package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/tradewinds-go/internal/application/ledger/commands"
	tradingCommands "github.com/andrescamacho/tradewinds-go/internal/application/trading/commands"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Recorder turns session events into ledger transactions and price history rows
// by dispatching the matching commands through the mediator.
type Recorder struct {
	mediator common.Mediator
}

// NewRecorder creates a recorder bound to a mediator
func NewRecorder(mediator common.Mediator) *Recorder {
	return &Recorder{mediator: mediator}
}

// Publish records every event. It keeps going after a failure and returns all errors joined.
func (r *Recorder) Publish(ctx context.Context, sessionID shared.SessionID, events game.Events) error {
	var errs []error

	for _, m := range events.Movements {
		_, err := r.mediator.Send(ctx, &ledgerCommands.RecordTransactionCommand{
			SessionID:         sessionID.String(),
			TransactionType:   m.Type.String(),
			Day:               m.Day,
			Amount:            m.Amount,
			BalanceBefore:     m.BalanceBefore,
			BalanceAfter:      m.BalanceAfter,
			Description:       m.Description,
			RelatedEntityType: m.RelatedEntityType,
			RelatedEntityID:   m.RelatedEntityID,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("record %s: %w", m.Type, err))
		}
	}

	for _, regen := range events.Regenerations {
		_, err := r.mediator.Send(ctx, &tradingCommands.RecordMarketPricesCommand{
			SessionID: sessionID.String(),
			Snapshot:  regen.Snapshot,
			Day:       regen.Day,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("record prices at %s: %w", regen.Snapshot.LocationID(), err))
		}
	}

	return errors.Join(errs...)
}
