package engine

import (
	"context"
	"time"
)

// Pacer suspends the loop between frames
type Pacer interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// TimePacer sleeps on the real clock and wakes early on context cancellation
type TimePacer struct{}

// NewTimePacer creates a new wall-clock pacer
func NewTimePacer() *TimePacer {
	return &TimePacer{}
}

// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
func (p *TimePacer) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
