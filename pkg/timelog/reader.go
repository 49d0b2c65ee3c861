package timelog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineSize bounds a single line read back by ReadFile.
const maxLineSize = 1 << 20

// Entry is one parsed line of a checkpoint file.
type Entry struct {
	// Interval is true for interval summary lines.
	Interval bool
	// Index is the checkpoint index. Zero for interval lines.
	Index int
	// From and To are the clamped bounds of an interval line.
	From, To int
	// Seconds is the elapsed time of a checkpoint, or the sum of an interval.
	Seconds float64
	// Message is the text after the time field, if any.
	Message string
	// UnitSuffix is true when the time value carried " sec".
	UnitSuffix bool
}

// ParseLine parses a single checkpoint or interval line. A trailing newline
// is allowed. Errors are *ParseError wrapping ErrMalformedLine.
func ParseLine(line string) (Entry, error) {
	text := strings.TrimRight(line, "\r\n")
	e, reason := parseLine(text)
	if reason != "" {
		return Entry{}, &ParseError{Text: text, Err: fmt.Errorf("%w: %s", ErrMalformedLine, reason)}
	}
	return e, nil
}

func parseLine(text string) (Entry, string) {
	rest, ok := strings.CutPrefix(text, linePrefix)
	if !ok {
		return Entry{}, "missing " + strconv.Quote(linePrefix) + " prefix"
	}
	head, tail, ok := strings.Cut(rest, timeField)
	if !ok {
		return Entry{}, "missing time field"
	}

	var e Entry
	if rangeText, isInterval := strings.CutPrefix(head, intervalPrefix); isInterval {
		fromText, toText, ok := strings.Cut(rangeText, " - ")
		if !ok {
			return Entry{}, "interval without range"
		}
		var reason string
		if e.From, reason = parseIndex(fromText); reason != "" {
			return Entry{}, reason
		}
		if e.To, reason = parseIndex(toText); reason != "" {
			return Entry{}, reason
		}
		e.Interval = true
	} else {
		var reason string
		if e.Index, reason = parseIndex(head); reason != "" {
			return Entry{}, reason
		}
	}

	value, message, hasMessage := strings.Cut(tail, messageSep)
	if hasMessage {
		if e.Interval {
			return Entry{}, "interval line with message"
		}
		e.Message = message
	}
	if v, ok := strings.CutSuffix(value, unitSuffix); ok {
		value = v
		e.UnitSuffix = true
	}
	sec, err := strconv.ParseFloat(value, 64)
	if err != nil || sec < 0 {
		return Entry{}, "bad time value " + strconv.Quote(value)
	}
	e.Seconds = sec
	return e, ""
}

func parseIndex(s string) (int, string) {
	inner, ok := strings.CutPrefix(s, "<")
	if ok {
		inner, ok = strings.CutSuffix(inner, ">")
	}
	if !ok {
		return 0, "index " + strconv.Quote(s) + " not in angle brackets"
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return 0, "bad index " + strconv.Quote(inner)
	}
	return n, ""
}

// Read parses every non-blank line from r.
// The first malformed line stops reading with a *ParseError carrying its line number.
func Read(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var entries []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := ParseLine(text)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			return entries, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return entries, fmt.Errorf("read checkpoint lines: %w", err)
	}
	return entries, nil
}

// ReadFile parses a checkpoint file written by a Logger.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
