package timelog

import (
	"fmt"

	"github.com/randalmurphal/timelog/pkg/timelog/config"
)

// Settings keys read by FromConfig.
const (
	KeyFile              = "file"
	KeyUnitSuffix        = "unit_suffix"
	KeyRecordIntervals   = "record_intervals"
	KeySeparateStampRead = "separate_stamp_read"
	KeyReturnNextIndex   = "return_next_index"
	KeyFileMode          = "file_mode"
	KeySessionID         = "session_id"
)

// FromConfig builds a Logger from settings. Options passed by the caller are
// applied after the settings and win over them.
//
//	file: /tmp/import.timelog   # required
//	unit_suffix: true
//	record_intervals: true
//	separate_stamp_read: false
//	return_next_index: false
//	file_mode: "0640"
//	session_id: nightly-import
func FromConfig(cfg config.Config, opts ...Option) (*Logger, error) {
	path := cfg.String(KeyFile, "")
	if path == "" {
		return nil, fmt.Errorf("config key %q: %w", KeyFile, ErrEmptyPath)
	}

	settings := []Option{
		WithUnitSuffix(cfg.Bool(KeyUnitSuffix, false)),
		WithIntervalRecording(cfg.Bool(KeyRecordIntervals, false)),
		WithFileMode(cfg.FileMode(KeyFileMode, DefaultFileMode)),
		WithSessionID(cfg.String(KeySessionID, "")),
	}
	if cfg.Bool(KeySeparateStampRead, false) {
		settings = append(settings, WithSeparateStampRead())
	}
	if cfg.Bool(KeyReturnNextIndex, false) {
		settings = append(settings, WithReturnNextIndex())
	}

	return New(path, append(settings, opts...)...)
}

// Load reads a YAML or JSON settings file and builds a Logger from it.
func Load(path string, opts ...Option) (*Logger, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg, opts...)
}
