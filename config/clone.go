// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Deep copy for config maps.
// Notes: Effect sections hold colour and step lists, so nested maps and
// slices are copied too. yaml.v3 decodes nested mappings as Config.

package config

// Clone returns a deep copy of cfg. Nested maps become Sections.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	clone := make(Config, len(cfg))
	for name, value := range cfg {
		clone[name] = cloneValue(value)
	}
	return clone
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return cloneSection(v)
	case Section:
		return cloneSection(v)
	case Config:
		return cloneSection(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	}
	return value
}

func cloneSection(src map[string]interface{}) Section {
	out := make(Section, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}
	return out
}
