package engine

import (
	"context"
	"time"
)

// Clock supplies wall time and the loop's pacing sleep
type Clock interface {
	Now() time.Time

	// Sleep blocks for d or until ctx is done, returning ctx.Err() in the latter case
	Sleep(ctx context.Context, d time.Duration) error
}

// TimeProvider is the real system Clock
type TimeProvider struct{}

// NewTimeProvider creates a new system clock
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer so an interrupt can cut the tick short
func (p *TimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
