package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
	"github.com/andrescamacho/tradewinds-go/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newTransaction(t *testing.T, sessionID shared.SessionID, at time.Time, day int, txType ledger.TransactionType, before, amount int) *ledger.Transaction {
	t.Helper()
	tx, err := ledger.NewTransaction(ledger.TransactionParams{
		SessionID:     sessionID,
		Timestamp:     at,
		Day:           day,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: before,
		BalanceAfter:  before + amount,
		Description:   string(txType),
		Metadata:      map[string]interface{}{"units": 5},
	})
	require.NoError(t, err)
	return tx
}

func TestGormTransactionRepository_CreateAndFind(t *testing.T) {
	// Arrange
	repo := persistence.NewGormTransactionRepository(newTestDB(t))
	ctx := context.Background()
	sessionID := shared.NewSessionID()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tx := newTransaction(t, sessionID, at, 0, ledger.TransactionTypePurchaseCargo, 1000, -50)

	// Act
	require.NoError(t, repo.Create(ctx, tx))
	found, err := repo.FindByID(ctx, tx.ID(), sessionID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), found.ID())
	assert.Equal(t, ledger.CategoryTradingCosts, found.Category())
	assert.Equal(t, -50, found.Amount())
	assert.Equal(t, 950, found.BalanceAfter())
	assert.True(t, at.Equal(found.Timestamp()))
	assert.EqualValues(t, 5, found.Metadata()["units"])
}

func TestGormTransactionRepository_FindByIDOtherSession(t *testing.T) {
	repo := persistence.NewGormTransactionRepository(newTestDB(t))
	ctx := context.Background()
	tx := newTransaction(t, shared.NewSessionID(), time.Now().UTC(), 0, ledger.TransactionTypeFuel, 1000, -40)
	require.NoError(t, repo.Create(ctx, tx))

	_, err := repo.FindByID(ctx, tx.ID(), shared.NewSessionID())

	var notFound *ledger.ErrTransactionNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestGormTransactionRepository_FiltersByDayAndCategory(t *testing.T) {
	// Arrange
	repo := persistence.NewGormTransactionRepository(newTestDB(t))
	ctx := context.Background()
	sessionID := shared.NewSessionID()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newTransaction(t, sessionID, base, 0, ledger.TransactionTypePurchaseCargo, 1000, -50)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, sessionID, base.Add(time.Minute), 0, ledger.TransactionTypeFuel, 950, -40)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, sessionID, base.Add(2*time.Minute), 2, ledger.TransactionTypeSellCargo, 910, 120)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, shared.NewSessionID(), base, 0, ledger.TransactionTypeFuel, 1000, -25)))

	fromDay := 1
	fuel := ledger.CategoryFuelCosts

	// Act
	all, err := repo.FindBySession(ctx, sessionID, ledger.QueryOptions{OrderBy: ledger.OrderOldestFirst})
	require.NoError(t, err)
	later, err := repo.FindBySession(ctx, sessionID, ledger.QueryOptions{FromDay: &fromDay})
	require.NoError(t, err)
	fuelOnly, err := repo.FindBySession(ctx, sessionID, ledger.QueryOptions{Category: &fuel})
	require.NoError(t, err)
	count, err := repo.CountBySession(ctx, sessionID, ledger.QueryOptions{})
	require.NoError(t, err)

	// Assert
	require.Len(t, all, 3)
	assert.Equal(t, ledger.TransactionTypePurchaseCargo, all[0].TransactionType())
	assert.Equal(t, ledger.TransactionTypeSellCargo, all[2].TransactionType())
	require.Len(t, later, 1)
	assert.Equal(t, 120, later[0].Amount())
	require.Len(t, fuelOnly, 1)
	assert.Equal(t, -40, fuelOnly[0].Amount())
	assert.Equal(t, 3, count)
}

func TestGormTransactionRepository_ListSessions(t *testing.T) {
	repo := persistence.NewGormTransactionRepository(newTestDB(t))
	ctx := context.Background()
	older := shared.NewSessionID()
	newer := shared.NewSessionID()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, newTransaction(t, older, base, 0, ledger.TransactionTypeFuel, 1000, -40)))
	require.NoError(t, repo.Create(ctx, newTransaction(t, newer, base.Add(time.Hour), 0, ledger.TransactionTypeFuel, 1000, -40)))

	sessions, err := repo.ListSessions(ctx)

	require.NoError(t, err)
	assert.Equal(t, []shared.SessionID{newer, older}, sessions)
}
