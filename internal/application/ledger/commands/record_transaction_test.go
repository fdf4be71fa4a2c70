package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/application/ledger/commands"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/database"
)

func newHandler(t *testing.T) (*commands.RecordTransactionHandler, *persistence.GormTransactionRepository, *shared.MockClock) {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	repo := persistence.NewGormTransactionRepository(db)
	clock := shared.NewMockClock(time.Time{})
	return commands.NewRecordTransactionHandler(repo, clock), repo, clock
}

func TestRecordTransaction_StampsWithClock(t *testing.T) {
	// Arrange
	handler, repo, clock := newHandler(t)
	sessionID := shared.NewSessionID()
	clock.Advance(90 * time.Minute)

	// Act
	resp, err := handler.Handle(context.Background(), &commands.RecordTransactionCommand{
		SessionID:         sessionID.String(),
		TransactionType:   ledger.TransactionTypePurchaseCargo.String(),
		Day:               2,
		Amount:            -50,
		BalanceBefore:     1000,
		BalanceAfter:      950,
		Description:       "Bought 5 Food at 10",
		RelatedEntityType: "commodity",
		RelatedEntityID:   "food",
	})

	// Assert
	require.NoError(t, err)
	recorded := resp.(*commands.RecordTransactionResponse)
	assert.Equal(t, clock.Now(), recorded.Timestamp)

	stored, err := repo.FindByID(context.Background(), ledger.MustParseTransactionID(recorded.TransactionID), sessionID)
	require.NoError(t, err)
	assert.Equal(t, ledger.CategoryTradingCosts, stored.Category())
	assert.Equal(t, 2, stored.Day())
	assert.Equal(t, "food", stored.RelatedEntityID())
}

func TestRecordTransaction_RejectsBadEntries(t *testing.T) {
	handler, _, _ := newHandler(t)
	sessionID := shared.NewSessionID().String()

	cases := map[string]*commands.RecordTransactionCommand{
		"unknown type": {SessionID: sessionID, TransactionType: "TAXES", Amount: -1, BalanceBefore: 1, BalanceAfter: 0},
		"bad session":  {SessionID: "nope", TransactionType: "FUEL", Amount: -1, BalanceBefore: 1, BalanceAfter: 0},
		"zero amount":  {SessionID: sessionID, TransactionType: "FUEL", BalanceBefore: 1, BalanceAfter: 1},
	}
	for name, cmd := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), cmd)
			assert.Error(t, err)
		})
	}
}

func TestRecordTransaction_BalanceMustAddUp(t *testing.T) {
	handler, _, _ := newHandler(t)

	_, err := handler.Handle(context.Background(), &commands.RecordTransactionCommand{
		SessionID:       shared.NewSessionID().String(),
		TransactionType: ledger.TransactionTypeFuel.String(),
		Amount:          -13,
		BalanceBefore:   1000,
		BalanceAfter:    990,
	})

	var mismatch *ledger.ErrBalanceInvariantViolation
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 987, mismatch.Expected)
}

func TestRecordTransaction_WrongRequest(t *testing.T) {
	handler, _, _ := newHandler(t)

	_, err := handler.Handle(context.Background(), struct{}{})

	assert.Error(t, err)
}
