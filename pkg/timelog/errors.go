package timelog

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrEmptyPath indicates New was called without a target file.
	ErrEmptyPath = errors.New("timelog: empty file path")

	// ErrEmptyLog indicates an interval was requested before any checkpoint was logged.
	ErrEmptyLog = errors.New("timelog: no checkpoints logged")

	// ErrIndexOutOfRange indicates Record was asked for a checkpoint that does not exist.
	ErrIndexOutOfRange = errors.New("timelog: checkpoint index out of range")

	// ErrMalformedLine indicates a line that is not in checkpoint log format.
	ErrMalformedLine = errors.New("timelog: malformed line")
)

// File operations reported in FileError.Op.
const (
	OpAppend   = "append"
	OpTruncate = "truncate"
)

// FileError reports a failed write to the checkpoint file.
// The in-memory log has already been updated when it is returned.
type FileError struct {
	// Op is the failed operation: OpAppend or OpTruncate.
	Op string
	// Path is the checkpoint file.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("timelog: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *FileError) Unwrap() error {
	return e.Err
}

// IndexError reports a checkpoint index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("timelog: checkpoint %d out of range [0, %d)", e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is support.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ParseError reports a line of a checkpoint file that could not be parsed.
type ParseError struct {
	// Line is the 1-based line number, or 0 when parsing a lone line.
	Line int
	// Text is the offending line without its terminator.
	Text string
	// Err describes what was wrong. It wraps ErrMalformedLine.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("timelog: line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("timelog: %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}
