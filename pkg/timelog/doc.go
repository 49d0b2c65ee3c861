/*
Package timelog records elapsed time between checkpoints and appends each
checkpoint to a plain text file.

# Overview

A Logger owns a file path, the elapsed time of every checkpoint since it was
created or last reset, and the time of the most recent checkpoint. Each call
to Log measures the time since the previous checkpoint, stores it, and
appends one line to the file:

	TL : <0> | time: 0.000412 | opened input
	TL : <1> | time: 1.250031
	TL : <2> | time: 0.083310 | wrote output

Intervals can be summed afterwards without re-reading the file.

# Basic Usage

	tl, err := timelog.New("/tmp/import.timelog")
	if err != nil {
	    log.Fatal(err)
	}

	tl.Log("opened input")
	parse()
	tl.Log("")
	write()
	tl.Log("wrote output")

	total, _ := tl.Total()            // all checkpoints
	parsing, _ := tl.SumInterval(1, 1) // one checkpoint

# Indices

The first checkpoint after New or Reset has index 0, and Log returns the
index it just wrote. SumInterval clamps both indices into [0, Len()-1] and
accepts them in either order; it fails with ErrEmptyLog when nothing has
been logged. Record does not clamp.

# File Handling

The file is opened, written, and closed on every call; no handle is held
between calls, so other processes may read it at any time. Log and
SumInterval append, creating the file if needed. Reset truncates it.

In-memory state is updated before the file is written. A failed write
returns a *FileError, but the checkpoint stays recorded and its index stays
valid:

	idx, err := tl.Log("step")
	var fe *timelog.FileError
	if errors.As(err, &fe) {
	    // checkpoint idx exists; only the line is missing
	}

ReadFile parses a checkpoint file back into Entry values.

# Testing

Pass a ManualClock to make elapsed times deterministic:

	clock := timelog.NewManualClock(time.Unix(0, 0))
	tl, _ := timelog.New(path, timelog.WithClock(clock))
	clock.Advance(2 * time.Second)
	tl.Log("") // TL : <0> | time: 2.000000

# Concurrency

Logger is not safe for concurrent use. NewSynchronized wraps one behind a
mutex. Two Loggers writing the same file may interleave lines.

# Observability

WithObservabilityLogger, WithMetrics, and WithTracing report checkpoints,
resets, interval sums, and write failures through slog and OpenTelemetry.
They never change what is written to the checkpoint file.
*/
package timelog
