package engine

import (
	"sync"
	"time"
)

// Clock is the time source for input timing, injected so tests can control it
type Clock interface {
	Now() time.Time
}

var (
	_ Clock = SystemClock{}
	_ Clock = (*MockClock)(nil)
)

// SystemClock reads wall time with monotonic readings
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock stands still until Advance is called
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockClock creates a mock clock frozen at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{now: start}
}

func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
