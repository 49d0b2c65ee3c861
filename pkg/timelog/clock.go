package timelog

import (
	"sync"
	"time"
)

// Clock supplies the current time to a Logger.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now. The returned times carry a monotonic reading,
// so elapsed times between them are never negative.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// ManualClock is a Clock that only moves when told to.
// It is safe for concurrent use.
//
// Example:
//
//	clock := timelog.NewManualClock(time.Unix(0, 0))
//	tl, _ := timelog.New(path, timelog.WithClock(clock))
//	clock.Advance(250 * time.Millisecond)
//	tl.Log("step") // elapsed 0.250000
type ManualClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative values move it backward.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
