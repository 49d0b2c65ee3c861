package timelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// epoch is the starting point of every ManualClock in these tests.
var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestLogger returns a Logger on a fresh temp file driven by a ManualClock.
func newTestLogger(t *testing.T, opts ...Option) (*Logger, *ManualClock) {
	t.Helper()
	clock := NewManualClock(epoch)
	path := filepath.Join(t.TempDir(), "checkpoints.log")
	l, err := New(path, append([]Option{WithClock(clock)}, opts...)...)
	require.NoError(t, err)
	return l, clock
}

// readLines returns the file's lines without terminators.
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// missingDirPath returns a path whose parent directory does not exist.
func missingDirPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "no-such-dir", "checkpoints.log")
}
