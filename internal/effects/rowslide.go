// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/rowslide.go
// Summary: Rows slide in from one edge, one character per tick, staggered by
// a gap between rows.

package effects

import (
	"fmt"

	"github.com/framegrace/texelfx/easing"
	"github.com/framegrace/texelfx/motion"
	"github.com/framegrace/texelfx/texel"
)

func init() {
	Register("rowslide", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		direction := parseStringOrDefault(cfg, "direction", "left")
		if direction != "left" && direction != "right" {
			return nil, fmt.Errorf("rowslide: direction must be left or right, got %q", direction)
		}
		return &rowSlideEffect{
			effectBase: newEffectBase("rowslide", term, 0),
			fromRight:  direction == "left",
			rowGap:     max(parseIntOrDefault(cfg, "row_gap", 5), 0),
			speed:      parsePositiveFloatOrDefault(cfg, "speed", 0.8),
			ease:       parseEasingOrDefault(cfg, "easing", easing.InOutQuad),
		}, nil
	})
}

type rowSlideEffect struct {
	effectBase
	// fromRight slides characters leftward from the right edge.
	fromRight bool
	rowGap    int
	speed     float64
	ease      easing.Func

	rows       [][]*texel.Character
	activeRows [][]*texel.Character
	countdown  int
}

func (e *rowSlideEffect) Prepare() error {
	area := e.terminal.OutputArea()
	e.rows = e.terminal.CharactersGrouped(texel.RowTopToBottom)
	for _, row := range e.rows {
		for _, ch := range row {
			start := motion.Coord{Column: area.Left, Row: ch.InputCoord.Row}
			if e.fromRight {
				start.Column = area.Right
			}
			ch.Motion.SetCoordinate(start)
			path, err := ch.Motion.NewPath("slide", e.speed, e.ease)
			if err != nil {
				return err
			}
			path.NewWaypoint(ch.InputCoord)
			ch.Motion.ActivatePath(path)
		}
	}
	if len(e.rows) > 0 {
		e.activeRows = append(e.activeRows, e.rows[0])
		e.rows = e.rows[1:]
	}
	e.countdown = e.rowGap
	return nil
}

func (e *rowSlideEffect) Next() (texel.Frame, bool) {
	if len(e.rows) > 0 && (e.countdown == 0 || len(e.activeRows) == 0) {
		e.activeRows = append(e.activeRows, e.rows[0])
		e.rows = e.rows[1:]
		e.countdown = e.rowGap
	} else if len(e.rows) > 0 {
		e.countdown--
	}

	kept := e.activeRows[:0]
	for _, row := range e.activeRows {
		if len(row) == 0 {
			continue
		}
		var ch *texel.Character
		if e.fromRight {
			ch, row = row[0], row[1:]
		} else {
			ch, row = row[len(row)-1], row[:len(row)-1]
		}
		e.activate(ch)
		if len(row) > 0 {
			kept = append(kept, row)
		}
	}
	e.activeRows = kept

	e.tick(nil)
	return e.frame(len(e.rows) == 0 && len(e.activeRows) == 0 && len(e.active) == 0)
}
