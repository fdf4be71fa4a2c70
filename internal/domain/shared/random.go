package shared

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the only source of non-determinism in the simulation.
// *rand.Rand satisfies it; tests inject a fixed source to pin prices.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. A zero seed draws one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws a float in [lo, hi) from src
func Uniform(src RandomSource, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// FixedRandomSource always returns the same value. Value 0.5 yields the midpoint
// of every uniform range, which makes prices equal to base prices at neutral locations.
type FixedRandomSource struct {
	Value float64
}

// Float64 returns the fixed value
func (f *FixedRandomSource) Float64() float64 {
	return f.Value
}

// SequenceRandomSource replays values in order, cycling when exhausted
type SequenceRandomSource struct {
	Values []float64
	next   int
}

// Float64 returns the next value in the sequence
func (s *SequenceRandomSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
