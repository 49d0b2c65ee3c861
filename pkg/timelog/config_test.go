package timelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/timelog/pkg/timelog/config"
)

func TestFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "from-config.log")
	cfg := config.New(map[string]any{
		KeyFile:            path,
		KeyUnitSuffix:      true,
		KeyRecordIntervals: true,
		KeyReturnNextIndex: true,
		KeyFileMode:        "0600",
		KeySessionID:       "nightly-import",
	})

	clock := NewManualClock(epoch)
	l, err := FromConfig(cfg, WithClock(clock))
	require.NoError(t, err)

	assert.Equal(t, path, l.Path())
	assert.Equal(t, "nightly-import", l.ID())
	assert.True(t, l.unitSuffix)
	assert.True(t, l.recordIntervals)
	assert.True(t, l.returnNext)
	assert.False(t, l.separateStamp)
	assert.Equal(t, os.FileMode(0o600), l.fileMode)

	clock.Advance(time.Second)
	idx, err := l.Log("step")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	_, err = l.Total()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"TL : <0> | time: 1.000000 sec | step",
		"TL : interval <0> - <0> | time: 1.000000 sec",
	}, readLines(t, path))
}

func TestFromConfig_Defaults(t *testing.T) {
	l, err := FromConfig(config.New(map[string]any{KeyFile: "plain.log"}))
	require.NoError(t, err)

	assert.False(t, l.unitSuffix)
	assert.False(t, l.recordIntervals)
	assert.False(t, l.returnNext)
	assert.False(t, l.separateStamp)
	assert.Equal(t, DefaultFileMode, l.fileMode)
	assert.Contains(t, l.ID(), "tl-")
}

func TestFromConfig_CallerOptionsWin(t *testing.T) {
	cfg := config.New(map[string]any{
		KeyFile:       "plain.log",
		KeyUnitSuffix: true,
		KeySessionID:  "from-config",
	})

	l, err := FromConfig(cfg, WithUnitSuffix(false), WithSessionID("from-caller"))
	require.NoError(t, err)
	assert.False(t, l.unitSuffix)
	assert.Equal(t, "from-caller", l.ID())
}

func TestFromConfig_MissingFile(t *testing.T) {
	_, err := FromConfig(config.New(map[string]any{KeyUnitSuffix: true}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Contains(t, err.Error(), `"file"`)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "loaded.log")

	t.Run("yaml", func(t *testing.T) {
		settings := filepath.Join(dir, "timelog.yaml")
		content := "file: " + logPath + "\nseparate_stamp_read: true\nfile_mode: 416\n"
		require.NoError(t, os.WriteFile(settings, []byte(content), 0o644))

		l, err := Load(settings)
		require.NoError(t, err)
		assert.Equal(t, logPath, l.Path())
		assert.True(t, l.separateStamp)
		assert.Equal(t, os.FileMode(0o640), l.fileMode)
	})

	t.Run("json", func(t *testing.T) {
		settings := filepath.Join(dir, "timelog.json")
		content := `{"file": "` + logPath + `", "unit_suffix": true}`
		require.NoError(t, os.WriteFile(settings, []byte(content), 0o644))

		l, err := Load(settings)
		require.NoError(t, err)
		assert.True(t, l.unitSuffix)
	})

	t.Run("missing settings file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})
}
