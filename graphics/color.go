// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/color.go
// Summary: Colour parsing, palette normalisation and the xterm colour cache.
// Usage: Effects parse configured colours with ParseColor; the screen driver
// resolves every drawn colour through a ColorCache.

package graphics

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor reports a colour that is neither a 24-bit hex string nor a
// palette code in [0,255].
var ErrInvalidColor = errors.New("graphics: invalid color")

// ParseColor accepts "rrggbb", "#rrggbb" or a palette code "0".."255".
func ParseColor(value string) (tcell.Color, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return tcell.ColorDefault, fmt.Errorf("%w: empty value", ErrInvalidColor)
	}
	if len(v) <= 3 && !strings.HasPrefix(v, "#") {
		code, err := strconv.Atoi(v)
		if err != nil || code < 0 || code > 255 {
			return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, value)
		}
		return tcell.PaletteColor(code), nil
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 7 {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// ParseColors parses every value, stopping at the first failure.
func ParseColors(values []string) ([]tcell.Color, error) {
	out := make([]tcell.Color, 0, len(values))
	for _, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Normalize converts palette colours to their RGB equivalent. RGB colours are
// returned unchanged.
func Normalize(c tcell.Color) (tcell.Color, error) {
	if !c.Valid() {
		return tcell.ColorDefault, fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return tcell.ColorDefault, fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}
	return tcell.NewRGBColor(r, g, b), nil
}

// Hex renders a colour as a lowercase rrggbb string.
func Hex(c tcell.Color) string {
	r, g, b := c.RGB()
	if r < 0 {
		return ""
	}
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// ColorMode selects how a ColorCache resolves colours before drawing.
type ColorMode int

const (
	// TrueColor passes colours through untouched.
	TrueColor ColorMode = iota
	// XtermColors maps every colour to its nearest xterm-256 palette entry.
	XtermColors
	// NoColor strips colours entirely.
	NoColor
)

// ColorCache resolves colours for a rendering target. It is safe for
// concurrent use.
type ColorCache struct {
	mode ColorMode

	mu      sync.Mutex
	xterm   map[tcell.Color]tcell.Color
	palette []tcell.Color
}

// NewColorCache constructs a cache for the given mode.
func NewColorCache(mode ColorMode) *ColorCache {
	c := &ColorCache{mode: mode}
	if mode == XtermColors {
		c.xterm = make(map[tcell.Color]tcell.Color)
		c.palette = make([]tcell.Color, 256)
		for i := range c.palette {
			c.palette[i] = tcell.PaletteColor(i)
		}
	}
	return c
}

// Mode returns the resolution mode.
func (c *ColorCache) Mode() ColorMode {
	if c == nil {
		return TrueColor
	}
	return c.mode
}

// Resolve maps a colour according to the cache mode.
func (c *ColorCache) Resolve(color tcell.Color) tcell.Color {
	if c == nil {
		return color
	}
	switch c.mode {
	case NoColor:
		return tcell.ColorDefault
	case XtermColors:
		if !color.IsRGB() {
			return color
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if mapped, ok := c.xterm[color]; ok {
			return mapped
		}
		mapped := tcell.FindColor(color, c.palette)
		c.xterm[color] = mapped
		return mapped
	default:
		return color
	}
}

// Len reports how many colours have been memoised.
func (c *ColorCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.xterm)
}
