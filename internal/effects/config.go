// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/config.go
// Summary: Parsing helpers for the loosely typed effect configuration maps.
// Usage: Factories read their knobs with parseXOrDefault; malformed values
// are logged and replaced by the default.
// Notes: Values arrive as JSON numbers, YAML ints, slices, or -set strings.

package effects

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/framegrace/texelfx/easing"
	"github.com/framegrace/texelfx/graphics"
	"github.com/gdamore/tcell/v2"
)

// EffectConfig holds the settings of one effect.
type EffectConfig map[string]interface{}

// Clone returns a shallow copy of cfg.
func (cfg EffectConfig) Clone() EffectConfig {
	out := make(EffectConfig, len(cfg))
	for k, v := range cfg {
		out[k] = v
	}
	return out
}

// Merge overlays other onto a copy of cfg.
func (cfg EffectConfig) Merge(other EffectConfig) EffectConfig {
	out := cfg.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// ParseOverride splits a key=value override.
func ParseOverride(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("effects: override %q is not key=value", raw)
	}
	return key, strings.TrimSpace(value), nil
}

func parseFloatOrDefault(cfg EffectConfig, key string, fallback float64) float64 {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case float64:
			return v
		case float32:
			return float64(v)
		case int:
			return float64(v)
		case int64:
			return float64(v)
		case string:
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return parsed
			}
		}
		log.Printf("Effects: invalid number for %s: %v", key, raw)
	}
	return fallback
}

func parseIntOrDefault(cfg EffectConfig, key string, fallback int) int {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		switch v := raw.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return parsed
			}
		}
		log.Printf("Effects: invalid integer for %s: %v", key, raw)
	}
	return fallback
}

func parsePositiveIntOrDefault(cfg EffectConfig, key string, fallback int) int {
	v := parseIntOrDefault(cfg, key, fallback)
	if v < 1 {
		log.Printf("Effects: %s must be positive, using %d", key, fallback)
		return fallback
	}
	return v
}

func parsePositiveFloatOrDefault(cfg EffectConfig, key string, fallback float64) float64 {
	v := parseFloatOrDefault(cfg, key, fallback)
	if v <= 0 {
		log.Printf("Effects: %s must be positive, using %v", key, fallback)
		return fallback
	}
	return v
}

func parseStringOrDefault(cfg EffectConfig, key string, fallback string) string {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fallback
}

// parseStringsOrDefault accepts a list or a comma/space separated string.
func parseStringsOrDefault(cfg EffectConfig, key string, fallback []string) []string {
	if cfg == nil {
		return fallback
	}
	raw, ok := cfg[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		return strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	}
	log.Printf("Effects: invalid list for %s: %v", key, raw)
	return fallback
}

func parseIntsOrDefault(cfg EffectConfig, key string, fallback []int) []int {
	if cfg == nil {
		return fallback
	}
	raw, ok := cfg[key]
	if !ok {
		return fallback
	}
	switch v := raw.(type) {
	case int:
		return []int{v}
	case float64:
		return []int{int(v)}
	}
	items := parseStringsOrDefault(cfg, key, nil)
	if items == nil {
		return fallback
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, err := strconv.Atoi(item)
		if err != nil {
			log.Printf("Effects: invalid integer in %s: %q", key, item)
			return fallback
		}
		out = append(out, n)
	}
	return out
}

func parseColorOrDefault(cfg EffectConfig, key string, fallback tcell.Color) tcell.Color {
	if cfg == nil {
		return fallback
	}
	if raw, ok := cfg[key]; ok {
		color, err := graphics.ParseColor(fmt.Sprint(raw))
		if err == nil {
			return color
		}
		log.Printf("Effects: %s: %v", key, err)
	}
	return fallback
}

func parseColorsOrDefault(cfg EffectConfig, key string, fallback []tcell.Color) []tcell.Color {
	items := parseStringsOrDefault(cfg, key, nil)
	if items == nil {
		return fallback
	}
	colors, err := graphics.ParseColors(items)
	if err != nil {
		log.Printf("Effects: %s: %v", key, err)
		return fallback
	}
	return colors
}

func parseEasingOrDefault(cfg EffectConfig, key string, fallback easing.Func) easing.Func {
	name := parseStringOrDefault(cfg, key, "")
	if name == "" {
		return fallback
	}
	fn, err := easing.ByName(name)
	if err != nil {
		log.Printf("Effects: %s: %v", key, err)
		return fallback
	}
	return fn
}

func parseSeed(cfg EffectConfig) int64 {
	return int64(parseIntOrDefault(cfg, "seed", 0))
}

// mustColors parses built-in colour literals.
func mustColors(values ...string) []tcell.Color {
	colors, err := graphics.ParseColors(values)
	if err != nil {
		panic(err)
	}
	return colors
}
