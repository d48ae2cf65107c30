// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/visual.go
// Summary: The rendered look of a character and the timed frames built from it.

package graphics

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ErrInvalidDuration is returned when a frame lasts less than one tick.
var ErrInvalidDuration = errors.New("graphics: frame duration must be at least 1")

// Visual is what a character looks like on a single tick.
type Visual struct {
	Symbol string
	Color  tcell.Color
	Attrs  tcell.AttrMask
}

// Style converts the visual into a tcell style.
func (v Visual) Style() tcell.Style {
	st := tcell.StyleDefault.Attributes(v.Attrs)
	if v.Color != tcell.ColorDefault {
		st = st.Foreground(v.Color)
	}
	return st
}

// Frame is a visual held for Duration ticks.
type Frame struct {
	Visual   Visual
	Duration int
}

// NewFrame validates duration and returns the frame.
func NewFrame(v Visual, duration int) (Frame, error) {
	if duration < 1 {
		return Frame{}, fmt.Errorf("%w: %d", ErrInvalidDuration, duration)
	}
	return Frame{Visual: v, Duration: duration}, nil
}
