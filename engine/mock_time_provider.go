package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable Clock for testing.
// Sleep returns immediately, advancing mocked time and recording the duration.
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	sleeps      []time.Duration

	// OnSleep, if set, runs after each recorded sleep
	OnSleep func(d time.Duration)
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Sleep records d and advances mocked time unless ctx is already done
func (m *MockTimeProvider) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.sleeps = append(m.sleeps, d)
	m.currentTime = m.currentTime.Add(d)
	hook := m.OnSleep
	m.mu.Unlock()

	if hook != nil {
		hook(d)
	}
	return ctx.Err()
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Sleeps returns a copy of every recorded sleep duration
func (m *MockTimeProvider) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}
