package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/timelog/pkg/timelog/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"with values", map[string]any{"file": "out.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(tt.data)
			assert.NotNil(t, cfg.Raw())
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal string
		want       string
	}{
		{"key exists", map[string]any{"file": "a.log"}, "default", "a.log"},
		{"key missing", map[string]any{"other": "x"}, "default", "default"},
		{"empty string", map[string]any{"file": ""}, "default", ""},
		{"wrong type", map[string]any{"file": 12}, "default", "default"},
		{"nil map", nil, "default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.New(tt.data).String("file", tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name       string
		data       map[string]any
		defaultVal bool
		want       bool
	}{
		{"true", map[string]any{"unit_suffix": true}, false, true},
		{"false", map[string]any{"unit_suffix": false}, true, false},
		{"missing", map[string]any{}, true, true},
		{"string is not bool", map[string]any{"unit_suffix": "true"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.New(tt.data).Bool("unit_suffix", tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int
	}{
		{"int", 7, 7},
		{"int64", int64(8), 8},
		{"whole float64", float64(9), 9},
		{"fractional float64", 9.5, -1},
		{"string", "9", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(map[string]any{"n": tt.val})
			assert.Equal(t, tt.want, cfg.Int("n", -1))
		})
	}
}

func TestFileMode(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want os.FileMode
	}{
		{"decimal int", 420, 0o644},
		{"json number", float64(384), 0o600},
		{"octal string", "0640", 0o640},
		{"octal string without zero", "600", 0o600},
		{"go style octal string", "0o755", 0o755},
		{"not octal", "0999", 0o644},
		{"too large", 0o1777, 0o644},
		{"negative", -1, 0o644},
		{"bool", true, 0o644},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New(map[string]any{"file_mode": tt.val})
			assert.Equal(t, tt.want, cfg.FileMode("file_mode", 0o644))
		})
	}

	t.Run("missing", func(t *testing.T) {
		assert.Equal(t, os.FileMode(0o600), config.New(nil).FileMode("file_mode", 0o600))
	})
}

func TestHas(t *testing.T) {
	cfg := config.New(map[string]any{"file": "x", "empty": nil})
	assert.True(t, cfg.Has("file"))
	assert.True(t, cfg.Has("empty"))
	assert.False(t, cfg.Has("missing"))
}

func TestFromYAML(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("file: run.log\nunit_suffix: true\nfile_mode: \"0600\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "run.log", cfg.String("file", ""))
		assert.True(t, cfg.Bool("unit_suffix", false))
		assert.Equal(t, os.FileMode(0o600), cfg.FileMode("file_mode", 0o644))
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Empty(t, cfg.Raw())
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := config.FromYAML([]byte("file: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})
}

func TestFromJSON(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		cfg, err := config.FromJSON([]byte(`{"file": "run.log", "record_intervals": true, "file_mode": 384}`))
		require.NoError(t, err)
		assert.Equal(t, "run.log", cfg.String("file", ""))
		assert.True(t, cfg.Bool("record_intervals", false))
		assert.Equal(t, os.FileMode(0o600), cfg.FileMode("file_mode", 0o644))
	})

	t.Run("blank document", func(t *testing.T) {
		cfg, err := config.FromJSON([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Raw())
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := config.FromJSON([]byte(`{"file":`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse json")
	})
}

func TestFromFile(t *testing.T) {
	tmpDir := t.TempDir()

	yamlPath := filepath.Join(tmpDir, "timelog.YAML")
	require.NoError(t, os.WriteFile(yamlPath, []byte("file: from-yaml.log\n"), 0o644))

	jsonPath := filepath.Join(tmpDir, "timelog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"file": "from-json.log"}`), 0o644))

	txtPath := filepath.Join(tmpDir, "timelog.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("file=x"), 0o644))

	tests := []struct {
		name     string
		path     string
		wantFile string
		errMsg   string
	}{
		{"yaml with upper case extension", yamlPath, "from-yaml.log", ""},
		{"json", jsonPath, "from-json.log", ""},
		{"unsupported extension", txtPath, "", "unsupported config file extension"},
		{"missing file", filepath.Join(tmpDir, "absent.yml"), "", "read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromFile(tt.path)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, cfg.String("file", ""))
		})
	}
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := config.Parse([]byte("file: x"), config.Format("toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config format")
}
