package common

import (
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// RandomFactory produces the random source of a new session
type RandomFactory func() shared.RandomSource

// SeededRandomFactory returns a factory for a configured seed.
// Seed 0 gives every session its own clock-seeded source; any other seed makes every session replay the same prices.
func SeededRandomFactory(seed uint64) RandomFactory {
	return func() shared.RandomSource {
		return shared.NewRandomSource(seed)
	}
}
