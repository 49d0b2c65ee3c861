/*
Package config reads timelog settings out of a map[string]any.

# Overview

Config wraps a decoded YAML or JSON document and exposes typed accessors
that fall back to a caller-supplied default when a key is missing or holds
a value of the wrong type. The timelog package uses it to build a Logger
from a settings file:

	cfg, err := config.FromFile("timelog.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	path := cfg.String("file", "")
	suffix := cfg.Bool("unit_suffix", false)
	mode := cfg.FileMode("file_mode", 0o644)

A typical settings file:

	file: /tmp/import.timelog
	unit_suffix: true
	record_intervals: true
	file_mode: "0640"

# Type Coercion

Int accepts int, int64, and float64 values without a fractional part
(JSON numbers decode as float64). FileMode additionally accepts an octal
string such as "0644" or "644", since YAML and JSON have no octal literal
that survives both decoders.

# Thread Safety

Config is safe for concurrent reads. It never modifies the wrapped map.
*/
package config
