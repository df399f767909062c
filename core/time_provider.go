// Package core provides the shared frame clock and the deferred-work
// scheduler used by every component of the interaction core.
package core

import "time"

// TimeProvider supplies monotonic timestamps to the frame pipeline
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider is the production time source
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time source
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable time source for tests
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock starting at the given time
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// Advance moves the mocked time forward
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// Set jumps the mocked time
func (m *MockTimeProvider) Set(t time.Time) {
	m.current = t
}
