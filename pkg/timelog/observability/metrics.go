package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records timelog metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCheckpoint records one checkpoint and the time elapsed since the previous one.
	RecordCheckpoint(ctx context.Context, sessionID string, elapsed time.Duration)

	// RecordInterval records an interval sum covering span checkpoints.
	RecordInterval(ctx context.Context, sessionID string, span int, sum time.Duration)

	// RecordReset records a reset of the checkpoint log.
	RecordReset(ctx context.Context, sessionID string)

	// RecordWriteError records a failed file operation ("append" or "truncate").
	RecordWriteError(ctx context.Context, sessionID, op string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	checkpoints    metric.Int64Counter
	elapsed        metric.Float64Histogram
	intervalSum    metric.Float64Histogram
	intervalLength metric.Int64Histogram
	resets         metric.Int64Counter
	writeErrors    metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("timelog")

	checkpoints, err := meter.Int64Counter("timelog.checkpoints",
		metric.WithDescription("Number of checkpoints recorded"),
	)
	if err != nil {
		return nil, err
	}

	elapsed, err := meter.Float64Histogram("timelog.checkpoint.elapsed_ms",
		metric.WithDescription("Time elapsed since the previous checkpoint in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	intervalSum, err := meter.Float64Histogram("timelog.interval.sum_ms",
		metric.WithDescription("Summed elapsed time over a checkpoint interval in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	intervalLength, err := meter.Int64Histogram("timelog.interval.checkpoints",
		metric.WithDescription("Number of checkpoints covered by an interval sum"),
	)
	if err != nil {
		return nil, err
	}

	resets, err := meter.Int64Counter("timelog.resets",
		metric.WithDescription("Number of checkpoint log resets"),
	)
	if err != nil {
		return nil, err
	}

	writeErrors, err := meter.Int64Counter("timelog.write.errors",
		metric.WithDescription("Number of failed checkpoint file writes"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		checkpoints:    checkpoints,
		elapsed:        elapsed,
		intervalSum:    intervalSum,
		intervalLength: intervalLength,
		resets:         resets,
		writeErrors:    writeErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func sessionAttrs(sessionID string) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String("session_id", sessionID))
}

// toMillis keeps sub-millisecond precision; checkpoints are often closer than 1ms.
func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// RecordCheckpoint records a checkpoint.
func (m *otelMetrics) RecordCheckpoint(ctx context.Context, sessionID string, elapsed time.Duration) {
	attrs := sessionAttrs(sessionID)
	m.checkpoints.Add(ctx, 1, attrs)
	m.elapsed.Record(ctx, toMillis(elapsed), attrs)
}

// RecordInterval records an interval sum.
func (m *otelMetrics) RecordInterval(ctx context.Context, sessionID string, span int, sum time.Duration) {
	attrs := sessionAttrs(sessionID)
	m.intervalSum.Record(ctx, toMillis(sum), attrs)
	m.intervalLength.Record(ctx, int64(span), attrs)
}

// RecordReset records a reset.
func (m *otelMetrics) RecordReset(ctx context.Context, sessionID string) {
	m.resets.Add(ctx, 1, sessionAttrs(sessionID))
}

// RecordWriteError records a failed file operation.
func (m *otelMetrics) RecordWriteError(ctx context.Context, sessionID, op string) {
	m.writeErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("session_id", sessionID),
		attribute.String("operation", op),
	))
}
