package engine

import (
	"context"
	"sync"
	"time"
)

// MockPacer records requested sleeps without blocking, for tests
type MockPacer struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

// NewMockPacer creates a new mock pacer
func NewMockPacer() *MockPacer {
	return &MockPacer{}
}

// Sleep records d and returns immediately unless ctx is already done
func (m *MockPacer) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	return nil
}

// Sleeps returns a copy of every recorded duration in order
func (m *MockPacer) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

// Last returns the most recent recorded duration, zero if none
func (m *MockPacer) Last() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sleeps) == 0 {
		return 0
	}
	return m.sleeps[len(m.sleeps)-1]
}
