package timelog

import (
	"strconv"
	"strings"
)

// Line layout shared by the writer and the reader.
const (
	linePrefix     = "TL : "
	intervalPrefix = "interval "
	timeField      = " | time: "
	messageSep     = " | "
	unitSuffix     = " sec"
)

// formatSeconds renders seconds as fixed-point with six decimals, '.' as the
// separator, and no digit grouping.
func formatSeconds(sec float64) string {
	return strconv.FormatFloat(sec, 'f', 6, 64)
}

// formatCheckpoint renders "TL : <index> | time: 0.123456[ sec][ | message]\n".
func formatCheckpoint(index int, sec float64, message string, suffix bool) string {
	var b strings.Builder
	b.Grow(len(linePrefix) + len(message) + 32)
	b.WriteString(linePrefix)
	writeIndex(&b, index)
	writeTime(&b, sec, suffix)
	if message != "" {
		b.WriteString(messageSep)
		b.WriteString(message)
	}
	b.WriteByte('\n')
	return b.String()
}

// formatInterval renders "TL : interval <from> - <to> | time: 1.000000[ sec]\n".
func formatInterval(from, to int, sum float64, suffix bool) string {
	var b strings.Builder
	b.WriteString(linePrefix)
	b.WriteString(intervalPrefix)
	writeIndex(&b, from)
	b.WriteString(" - ")
	writeIndex(&b, to)
	writeTime(&b, sum, suffix)
	b.WriteByte('\n')
	return b.String()
}

func writeIndex(b *strings.Builder, index int) {
	b.WriteByte('<')
	b.WriteString(strconv.Itoa(index))
	b.WriteByte('>')
}

func writeTime(b *strings.Builder, sec float64, suffix bool) {
	b.WriteString(timeField)
	b.WriteString(formatSeconds(sec))
	if suffix {
		b.WriteString(unitSuffix)
	}
}
