package shared

import "time"

// Clock supplies wall-clock timestamps for ledger and price history rows.
// Game days live on the player and never come from a Clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time { return time.Now().UTC() }

// MockClock stands still until Advance is called
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock starts at start, or at a fixed instant when start is zero so
// tests stay reproducible.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Date(2300, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return &MockClock{CurrentTime: start}
}

func (m *MockClock) Now() time.Time { return m.CurrentTime }

func (m *MockClock) Advance(d time.Duration) { m.CurrentTime = m.CurrentTime.Add(d) }
