package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/tradewinds-go/internal/adapters/persistence"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/navigation"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

func newGameSession(t *testing.T) *game.Session {
	t.Helper()
	world, err := game.NewDefaultWorld(navigation.TravelModeExplicit, 25)
	require.NoError(t, err)
	s, err := game.NewSession(shared.NewSessionID(), world, game.DefaultConfig("Vega", "Wanderer"), &shared.FixedRandomSource{Value: 0.5})
	require.NoError(t, err)
	return s
}

func TestInMemorySessionRepository_Lifecycle(t *testing.T) {
	// Arrange
	repo := persistence.NewInMemorySessionRepository()
	ctx := context.Background()
	first := newGameSession(t)
	second := newGameSession(t)

	// Act
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	// Assert
	found, err := repo.FindByID(ctx, first.ID())
	require.NoError(t, err)
	assert.Same(t, first, found)

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*game.Session{first, second}, listed)
	assert.Len(t, repo.IDs(), 2)

	require.NoError(t, repo.Remove(ctx, first.ID()))
	_, err = repo.FindByID(ctx, first.ID())
	var notFound *persistence.ErrSessionNotFound
	assert.ErrorAs(t, err, &notFound)

	listed, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*game.Session{second}, listed)
}

func TestInMemorySessionRepository_RejectsDuplicate(t *testing.T) {
	repo := persistence.NewInMemorySessionRepository()
	s := newGameSession(t)
	require.NoError(t, repo.Add(context.Background(), s))

	assert.Error(t, repo.Add(context.Background(), s))
}

func TestInMemorySessionRepository_RemoveUnknownIsNoop(t *testing.T) {
	repo := persistence.NewInMemorySessionRepository()

	assert.NoError(t, repo.Remove(context.Background(), shared.NewSessionID()))
}
