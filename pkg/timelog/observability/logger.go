// Package observability provides process-level observability for timelog:
// structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// None of this touches the checkpoint file itself. All features are opt-in
// and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// EnrichLogger adds timelog context to a logger.
// Returns a new logger with session_id and file fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "tl-1a2b3c4d", "/tmp/import.timelog")
//	enriched.Info("starting import") // includes session_id, file
func EnrichLogger(logger *slog.Logger, sessionID, path string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("session_id", sessionID),
		slog.String("file", path),
	)
}

// LogCheckpoint logs a recorded checkpoint.
func LogCheckpoint(logger *slog.Logger, index int, elapsedSec float64, message string) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.Int("index", index),
		slog.Float64("elapsed_sec", elapsedSec),
	}
	if message != "" {
		attrs = append(attrs, slog.String("message", message))
	}
	logger.Debug("checkpoint recorded", attrs...)
}

// LogReset logs a reset, including how many checkpoints were discarded.
func LogReset(logger *slog.Logger, discarded int) {
	if logger == nil {
		return
	}
	logger.Info("checkpoint log reset",
		slog.Int("discarded", discarded),
	)
}

// LogInterval logs an interval sum.
func LogInterval(logger *slog.Logger, from, to int, sumSec float64) {
	if logger == nil {
		return
	}
	logger.Debug("interval summed",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Float64("sum_sec", sumSec),
	)
}

// LogWriteError logs a failed append or truncate.
// In-memory state has already advanced when this is called.
func LogWriteError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("checkpoint file write failed",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}
