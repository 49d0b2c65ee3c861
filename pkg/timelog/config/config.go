package config

import (
	"os"
	"strconv"
	"strings"
)

// Config wraps a map[string]any for type-safe value extraction.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int only if it has no fractional part
func (c Config) Int(key string, defaultVal int) int {
	switch val := c.data[key].(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// FileMode returns the permission bits for key, or defaultVal if missing or invalid.
//
// Accepts everything Int accepts, plus an octal string ("0644", "644", "0o644").
// Values outside 0..0777 are rejected.
func (c Config) FileMode(key string, defaultVal os.FileMode) os.FileMode {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}

	var bits int64
	switch val := v.(type) {
	case string:
		s := strings.TrimPrefix(strings.TrimPrefix(val, "0o"), "0O")
		parsed, err := strconv.ParseInt(s, 8, 32)
		if err != nil {
			return defaultVal
		}
		bits = parsed
	default:
		n := c.Int(key, -1)
		if n < 0 {
			return defaultVal
		}
		bits = int64(n)
	}

	if bits < 0 || bits > 0o777 {
		return defaultVal
	}
	return os.FileMode(bits)
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}
