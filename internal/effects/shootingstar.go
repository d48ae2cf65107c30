// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/shootingstar.go
// Summary: Characters fall as stars from the top edge, row by row from the
// bottom, and turn back into text when they land.

package effects

import (
	"log"

	"github.com/framegrace/texelfx/easing"
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/motion"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
)

func init() {
	Register("shootingstar", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		return &shootingStarEffect{
			effectBase: newEffectBase("shootingstar", term, parseSeed(cfg)),
			speed:      parsePositiveFloatOrDefault(cfg, "speed", 0.6),
			ease:       parseEasingOrDefault(cfg, "easing", easing.OutQuad),
			star:       parseStringOrDefault(cfg, "star_symbol", "*"),
		}, nil
	})
}

type shootingStarEffect struct {
	effectBase
	speed float64
	ease  easing.Func
	star  string

	rows    [][]*texel.Character
	pending []*texel.Character
	stars   map[*texel.Character]*fallingStar
}

// fallingStar holds the path and scenes built for one character.
type fallingStar struct {
	fall    *motion.Path
	star    *graphics.Scene
	landing *graphics.Scene
}

func (e *shootingStarEffect) Prepare() error {
	area := e.terminal.OutputArea()
	e.stars = make(map[*texel.Character]*fallingStar)
	for _, ch := range e.terminal.Characters() {
		ch.Motion.SetCoordinate(motion.Coord{Column: e.randRange(area.Left, area.Right), Row: area.Top})
		path, err := ch.Motion.NewPath("fall", e.speed, e.ease)
		if err != nil {
			return err
		}
		path.NewWaypoint(ch.InputCoord)

		star, err := ch.Animation.NewScene("star")
		if err != nil {
			return err
		}
		star.Looping = true
		if err := star.AddFrame(e.star, 1, tcell.PaletteColor(e.randRange(1, 10)), 0); err != nil {
			return err
		}
		landing, err := ch.Animation.NewScene("landing")
		if err != nil {
			return err
		}
		if err := landing.AddFrame(ch.InputSymbol, 1, ch.InputColor, 0); err != nil {
			return err
		}
		e.stars[ch] = &fallingStar{fall: path, star: star, landing: landing}
	}
	e.rows = e.terminal.CharactersGrouped(texel.RowBottomToTop)
	return nil
}

func (e *shootingStarEffect) release(ch *texel.Character) {
	s := e.stars[ch]
	ch.Motion.ActivatePath(s.fall)
	if err := ch.Animation.ActivateScene(s.star); err != nil {
		log.Printf("Effects: shootingstar: %v", err)
	}
	ch.Layer = 1
	e.activate(ch)
}

// land swaps the star for the input symbol once the character arrives.
func (e *shootingStarEffect) land(ch *texel.Character) {
	if !ch.Motion.MovementComplete() {
		return
	}
	s := e.stars[ch]
	if ch.Animation.ActiveScene() != s.star {
		return
	}
	ch.Animation.DeactivateScene(s.star)
	if err := ch.Animation.ActivateScene(s.landing); err != nil {
		log.Printf("Effects: shootingstar: %v", err)
	}
	ch.Layer = 0
}

func (e *shootingStarEffect) Next() (texel.Frame, bool) {
	if len(e.pending) == 0 && len(e.rows) > 0 {
		e.pending = append(e.pending, e.rows[0]...)
		e.rows = e.rows[1:]
	}
	for n := e.randRange(1, 3); n > 0 && len(e.pending) > 0; n-- {
		i := e.rng.IntN(len(e.pending))
		ch := e.pending[i]
		e.pending = append(e.pending[:i], e.pending[i+1:]...)
		e.release(ch)
	}
	e.tick(e.land)
	return e.frame(len(e.rows) == 0 && len(e.pending) == 0 && len(e.active) == 0)
}
