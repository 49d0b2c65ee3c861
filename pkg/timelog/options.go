package timelog

import (
	"log/slog"
	"os"

	"github.com/randalmurphal/timelog/pkg/timelog/observability"
)

// DefaultFileMode is the permission used when the checkpoint file is created.
const DefaultFileMode os.FileMode = 0o644

// options holds construction-time configuration for a Logger.
type options struct {
	clock           Clock
	unitSuffix      bool
	recordIntervals bool
	separateStamp   bool
	returnNext      bool
	fileMode        os.FileMode
	sessionID       string

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

func defaultOptions() options {
	return options{
		clock:    SystemClock{},
		fileMode: DefaultFileMode,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
}

// Option configures a Logger.
type Option func(*options)

// WithClock replaces the system clock, typically with a ManualClock in tests.
// A nil clock is ignored.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithUnitSuffix appends " sec" after every time value written to the file.
// Default: false
func WithUnitSuffix(enabled bool) Option {
	return func(o *options) {
		o.unitSuffix = enabled
	}
}

// WithIntervalRecording makes SumInterval append a summary line to the file:
//
//	TL : interval <1> - <3> | time: 0.750000
//
// Default: false
func WithIntervalRecording(enabled bool) Option {
	return func(o *options) {
		o.recordIntervals = enabled
	}
}

// WithSeparateStampRead reads the clock a second time, after measuring the
// elapsed time, to stamp the checkpoint. The time spent between the two reads
// is then attributed to no checkpoint. By default a single read serves both.
func WithSeparateStampRead() Option {
	return func(o *options) {
		o.separateStamp = true
	}
}

// WithReturnNextIndex makes Log return the index the next checkpoint will
// receive instead of the one just written. The first Log then returns 1.
func WithReturnNextIndex() Option {
	return func(o *options) {
		o.returnNext = true
	}
}

// WithFileMode sets the permission bits used when the file is created.
// Default: 0644. A zero mode is ignored.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		if mode != 0 {
			o.fileMode = mode.Perm()
		}
	}
}

// WithSessionID overrides the generated session ID used to label process
// logs, metrics, and spans. An empty ID is ignored.
func WithSessionID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.sessionID = id
		}
	}
}

// WithObservabilityLogger enables process logging of checkpoints, resets,
// interval sums, and write failures. The logger is enriched with
// session_id and file.
func WithObservabilityLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics via the global meter provider.
// Default: false
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = observability.NewMetricsRecorder()
		} else {
			o.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans via the global tracer provider.
// Default: false
func WithTracing(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.spans = observability.NewSpanManager()
		} else {
			o.spans = observability.NoopSpanManager{}
		}
	}
}
