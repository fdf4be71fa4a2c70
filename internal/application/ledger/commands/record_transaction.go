package commands

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/metrics"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// RecordTransactionCommand books one credit movement of a session. Sessions emit these
// as events; the recorder turns each event into one command.
type RecordTransactionCommand struct {
	SessionID         string
	TransactionType   string
	Day               int
	Amount            int // signed: income positive, spending negative
	BalanceBefore     int
	BalanceAfter      int
	Description       string
	Metadata          map[string]interface{}
	RelatedEntityType string
	RelatedEntityID   string
}

type RecordTransactionResponse struct {
	TransactionID string
	Timestamp     time.Time
}

// RecordTransactionHandler validates and stores ledger entries. Entries are stamped
// with wall-clock time from the handler's clock, next to the game day they belong to.
type RecordTransactionHandler struct {
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
}

// NewRecordTransactionHandler uses the system clock when clock is nil
func NewRecordTransactionHandler(transactionRepo ledger.TransactionRepository, clock shared.Clock) *RecordTransactionHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RecordTransactionHandler{transactionRepo: transactionRepo, clock: clock}
}

func (h *RecordTransactionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecordTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordTransactionCommand")
	}

	params, err := cmd.params(h.clock.Now())
	if err != nil {
		return nil, err
	}
	entry, err := ledger.NewTransaction(params)
	if err != nil {
		return nil, fmt.Errorf("rejecting %s entry: %w", cmd.TransactionType, err)
	}
	if err := h.transactionRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("storing %s entry: %w", cmd.TransactionType, err)
	}

	metrics.RecordTransaction(cmd.SessionID, cmd.TransactionType, entry.Category().String(), cmd.Amount, cmd.BalanceAfter)
	common.LoggerFromContext(ctx).Debug("ledger entry recorded",
		zap.String("session", cmd.SessionID),
		zap.String("type", cmd.TransactionType),
		zap.Int("amount", cmd.Amount),
		zap.Int("day", cmd.Day))

	return &RecordTransactionResponse{TransactionID: entry.ID().String(), Timestamp: entry.Timestamp()}, nil
}

func (cmd *RecordTransactionCommand) params(now time.Time) (ledger.TransactionParams, error) {
	kind, err := ledger.ParseTransactionType(cmd.TransactionType)
	if err != nil {
		return ledger.TransactionParams{}, err
	}
	sessionID, err := shared.ParseSessionID(cmd.SessionID)
	if err != nil {
		return ledger.TransactionParams{}, err
	}
	return ledger.TransactionParams{
		SessionID:         sessionID,
		Timestamp:         now,
		Day:               cmd.Day,
		Type:              kind,
		Amount:            cmd.Amount,
		BalanceBefore:     cmd.BalanceBefore,
		BalanceAfter:      cmd.BalanceAfter,
		Description:       cmd.Description,
		Metadata:          cmd.Metadata,
		RelatedEntityType: cmd.RelatedEntityType,
		RelatedEntityID:   cmd.RelatedEntityID,
	}, nil
}
