package game

import (
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/market"
)

// CreditMovement records one change to the captain's credits, emitted by a successful operation
type CreditMovement struct {
	Type              ledger.TransactionType
	Amount            int
	BalanceBefore     int
	BalanceAfter      int
	Day               int
	Description       string
	RelatedEntityType string
	RelatedEntityID   string
}

// MarketRegenerated is emitted whenever a location's snapshot is rewritten
type MarketRegenerated struct {
	Snapshot *market.Snapshot
	Day      int
}

// Events are the side effects of operations since the last drain
type Events struct {
	Movements     []CreditMovement
	Regenerations []MarketRegenerated
}

// IsEmpty reports whether nothing happened
func (e Events) IsEmpty() bool {
	return len(e.Movements) == 0 && len(e.Regenerations) == 0
}
