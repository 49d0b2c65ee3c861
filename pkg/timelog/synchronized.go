package timelog

import (
	"context"
	"sync"
	"time"
)

// Synchronized serializes access to a Logger so goroutines can share it.
// Every method holds the lock for the whole operation, file write included,
// so lines appear in the file in index order.
type Synchronized struct {
	mu sync.Mutex
	l  *Logger
}

// NewSynchronized wraps l. The caller must stop using l directly.
func NewSynchronized(l *Logger) *Synchronized {
	return &Synchronized{l: l}
}

// Log is Logger.Log under the lock.
func (s *Synchronized) Log(message string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Log(message)
}

// LogContext is Logger.LogContext under the lock.
func (s *Synchronized) LogContext(ctx context.Context, message string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.LogContext(ctx, message)
}

// Reset is Logger.Reset under the lock.
func (s *Synchronized) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Reset()
}

// ResetContext is Logger.ResetContext under the lock.
func (s *Synchronized) ResetContext(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.ResetContext(ctx)
}

// SumInterval is Logger.SumInterval under the lock.
func (s *Synchronized) SumInterval(from, to int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.SumInterval(from, to)
}

// SumIntervalContext is Logger.SumIntervalContext under the lock.
func (s *Synchronized) SumIntervalContext(ctx context.Context, from, to int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.SumIntervalContext(ctx, from, to)
}

// Total is Logger.Total under the lock.
func (s *Synchronized) Total() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Total()
}

// Len is Logger.Len under the lock.
func (s *Synchronized) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Len()
}

// Records is Logger.Records under the lock.
func (s *Synchronized) Records() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Records()
}

// Record is Logger.Record under the lock.
func (s *Synchronized) Record(i int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Record(i)
}

// Timestamps is Logger.Timestamps under the lock.
func (s *Synchronized) Timestamps() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Timestamps()
}

// Path returns the checkpoint file path. It never changes, so no lock is taken.
func (s *Synchronized) Path() string {
	return s.l.Path()
}
