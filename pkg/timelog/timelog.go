package timelog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/timelog/pkg/timelog/observability"
)

// Logger records elapsed time between successive checkpoints and appends one
// line per checkpoint to a file.
//
// A Logger is not safe for concurrent use. Wrap it with NewSynchronized when
// several goroutines share it.
type Logger struct {
	path string
	id   string

	clock   Clock
	base    time.Time // construction or last Reset
	last    time.Time // most recent checkpoint, or base
	records []time.Duration

	unitSuffix      bool
	recordIntervals bool
	separateStamp   bool
	returnNext      bool
	fileMode        os.FileMode

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates a Logger writing to path. The file is not touched until the
// first Log or Reset, so an unwritable path is only reported then.
func New(path string, opts ...Option) (*Logger, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	id := cfg.sessionID
	if id == "" {
		id = newSessionID()
	}

	now := cfg.clock.Now()
	return &Logger{
		path:            path,
		id:              id,
		clock:           cfg.clock,
		base:            now,
		last:            now,
		unitSuffix:      cfg.unitSuffix,
		recordIntervals: cfg.recordIntervals,
		separateStamp:   cfg.separateStamp,
		returnNext:      cfg.returnNext,
		fileMode:        cfg.fileMode,
		logger:          observability.EnrichLogger(cfg.logger, id, path),
		metrics:         cfg.metrics,
		spans:           cfg.spans,
	}, nil
}

func newSessionID() string {
	return fmt.Sprintf("tl-%s", uuid.New().String()[:8])
}

// Log records a checkpoint and appends it to the file. It is LogContext with
// a background context.
func (l *Logger) Log(message string) (int, error) {
	return l.LogContext(context.Background(), message)
}

// LogContext records a checkpoint: the time elapsed since the previous
// checkpoint (or since New/Reset) is stored, and the line
//
//	TL : <index> | time: <elapsed>[ sec][ | message]
//
// is appended to the file. It returns the index assigned to this checkpoint.
//
// The checkpoint is recorded in memory before the file is written. If the
// write fails, the returned index is still valid and err is a *FileError.
func (l *Logger) LogContext(ctx context.Context, message string) (index int, err error) {
	ctx, span := l.spans.StartOperationSpan(ctx, observability.OpLog, l.id)
	defer func() { l.spans.EndSpanWithError(span, err) }()

	now := l.clock.Now()
	elapsed := now.Sub(l.last)
	if elapsed < 0 {
		elapsed = 0
	}
	if l.separateStamp {
		now = l.clock.Now()
	}
	l.last = now

	index = len(l.records)
	l.records = append(l.records, elapsed)
	if l.returnNext {
		index = len(l.records)
	}

	sec := elapsed.Seconds()
	l.metrics.RecordCheckpoint(ctx, l.id, elapsed)
	observability.LogCheckpoint(l.logger, len(l.records)-1, sec, message)

	line := formatCheckpoint(len(l.records)-1, sec, message, l.unitSuffix)
	if werr := appendLine(l.path, l.fileMode, line); werr != nil {
		return index, l.writeFailed(ctx, werr)
	}
	return index, nil
}

// Reset is ResetContext with a background context.
func (l *Logger) Reset() error {
	return l.ResetContext(context.Background())
}

// ResetContext discards all checkpoints, restarts the clock, and truncates
// the file (creating it if absent). The in-memory reset happens even when
// truncation fails.
func (l *Logger) ResetContext(ctx context.Context) (err error) {
	ctx, span := l.spans.StartOperationSpan(ctx, observability.OpReset, l.id)
	defer func() { l.spans.EndSpanWithError(span, err) }()

	discarded := len(l.records)
	l.records = nil
	now := l.clock.Now()
	l.base = now
	l.last = now

	l.metrics.RecordReset(ctx, l.id)
	observability.LogReset(l.logger, discarded)

	if werr := truncateFile(l.path, l.fileMode); werr != nil {
		return l.writeFailed(ctx, werr)
	}
	return nil
}

// SumInterval is SumIntervalContext with a background context.
func (l *Logger) SumInterval(from, to int) (float64, error) {
	return l.SumIntervalContext(context.Background(), from, to)
}

// SumIntervalContext returns the total elapsed seconds covered by checkpoints
// from through to, inclusive. Both indices are clamped into [0, Len()-1] and
// may be given in either order. It returns ErrEmptyLog if nothing has been
// logged.
//
// With WithIntervalRecording, a summary line is appended to the file. A failed
// write returns the sum together with a *FileError.
func (l *Logger) SumIntervalContext(ctx context.Context, from, to int) (sum float64, err error) {
	ctx, span := l.spans.StartOperationSpan(ctx, observability.OpInterval, l.id)
	defer func() { l.spans.EndSpanWithError(span, err) }()

	if len(l.records) == 0 {
		return 0, ErrEmptyLog
	}

	lo, hi := l.clamp(from), l.clamp(to)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo != min(from, to) || hi != max(from, to) {
		l.spans.AddSpanEvent(ctx, "indices clamped",
			attribute.Int("requested.from", from),
			attribute.Int("requested.to", to),
			attribute.Int("from", lo),
			attribute.Int("to", hi),
		)
	}

	var total time.Duration
	for _, d := range l.records[lo : hi+1] {
		total += d
	}
	sum = total.Seconds()

	l.metrics.RecordInterval(ctx, l.id, hi-lo+1, total)
	observability.LogInterval(l.logger, lo, hi, sum)

	if l.recordIntervals {
		if werr := appendLine(l.path, l.fileMode, formatInterval(lo, hi, sum, l.unitSuffix)); werr != nil {
			return sum, l.writeFailed(ctx, werr)
		}
	}
	return sum, nil
}

// Total returns the elapsed seconds covered by every checkpoint since New or
// the last Reset.
func (l *Logger) Total() (float64, error) {
	return l.SumInterval(0, len(l.records)-1)
}

func (l *Logger) clamp(i int) int {
	return max(0, min(i, len(l.records)-1))
}

// writeFailed reports a file error through the configured observability hooks.
func (l *Logger) writeFailed(ctx context.Context, err error) error {
	op := OpAppend
	if fe, ok := err.(*FileError); ok {
		op = fe.Op
	}
	l.metrics.RecordWriteError(ctx, l.id, op)
	observability.LogWriteError(l.logger, op, err)
	return err
}

// Len returns the number of checkpoints since New or the last Reset. It is
// also the index the next checkpoint will receive.
func (l *Logger) Len() int {
	return len(l.records)
}

// Records returns a copy of the elapsed seconds for every checkpoint.
func (l *Logger) Records() []float64 {
	out := make([]float64, len(l.records))
	for i, d := range l.records {
		out[i] = d.Seconds()
	}
	return out
}

// Durations returns a copy of the elapsed time for every checkpoint.
func (l *Logger) Durations() []time.Duration {
	out := make([]time.Duration, len(l.records))
	copy(out, l.records)
	return out
}

// Record returns the elapsed seconds of checkpoint i. Unlike SumInterval it
// does not clamp; an out-of-range index yields an *IndexError.
func (l *Logger) Record(i int) (float64, error) {
	if i < 0 || i >= len(l.records) {
		return 0, &IndexError{Index: i, Len: len(l.records)}
	}
	return l.records[i].Seconds(), nil
}

// Timestamps returns the absolute time of every checkpoint, rebuilt from the
// stored elapsed times and the time of New or the last Reset.
//
// With WithSeparateStampRead the result drifts early by the gap between the
// two clock reads of each Log.
func (l *Logger) Timestamps() []time.Time {
	out := make([]time.Time, len(l.records))
	at := l.base
	for i, d := range l.records {
		at = at.Add(d)
		out[i] = at
	}
	return out
}

// Path returns the checkpoint file path.
func (l *Logger) Path() string {
	return l.path
}

// ID returns the session ID used to label process logs, metrics, and spans.
func (l *Logger) ID() string {
	return l.id
}
