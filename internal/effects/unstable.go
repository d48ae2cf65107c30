// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/unstable.go
// Summary: Characters start jumbled and rumble, explode to the edges of the
// canvas, then reassemble at their input positions.

package effects

import (
	"log"

	"github.com/framegrace/texelfx/easing"
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/motion"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
)

const (
	unstableRumbleTicks   = 250
	unstableRumbleWarmup  = 30
	unstableRumbleDelay   = 20
	unstableExplosionHold = 50
)

type unstablePhase int

const (
	phaseRumble unstablePhase = iota
	phaseExplosion
	phaseReassembly
)

func init() {
	Register("unstable", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		direction, err := graphics.ParseDirection(parseStringOrDefault(cfg, "final_gradient_direction", "vertical"))
		if err != nil {
			log.Printf("Effects: unstable: %v", err)
			direction = graphics.Vertical
		}
		return &unstableEffect{
			effectBase:      newEffectBase("unstable", term, parseSeed(cfg)),
			unstableColor:   parseColorOrDefault(cfg, "unstable_color", tcell.NewRGBColor(0xff, 0x92, 0x00)),
			finalStops:      parseColorsOrDefault(cfg, "final_gradient_stops", mustColors("8A008A", "00D1FF", "FFFFFF")),
			finalSteps:      parseIntsOrDefault(cfg, "final_gradient_steps", []int{12}),
			direction:       direction,
			explosionEase:   parseEasingOrDefault(cfg, "explosion_easing", easing.OutExpo),
			explosionSpeed:  parsePositiveFloatOrDefault(cfg, "explosion_speed", 1.25),
			reassemblyEase:  parseEasingOrDefault(cfg, "reassembly_easing", easing.OutExpo),
			reassemblySpeed: parsePositiveFloatOrDefault(cfg, "reassembly_speed", 0.75),
		}, nil
	})
}

// unstableParts holds the paths and closing scene built for one character.
type unstableParts struct {
	explosion  *motion.Path
	reassembly *motion.Path
	settle     *graphics.Scene
}

type unstableEffect struct {
	effectBase
	unstableColor   tcell.Color
	finalStops      []tcell.Color
	finalSteps      []int
	direction       graphics.Direction
	explosionEase   easing.Func
	explosionSpeed  float64
	reassemblyEase  easing.Func
	reassemblySpeed float64

	jumbled     map[*texel.Character]motion.Coord
	parts       map[*texel.Character]*unstableParts
	phase       unstablePhase
	rumbleStep  int
	rumbleDelay int
	hold        int
}

func (e *unstableEffect) Prepare() error {
	final, err := graphics.NewGradient(e.finalStops, e.finalSteps...)
	if err != nil {
		return err
	}
	area := e.terminal.OutputArea()
	colorMap := final.CoordinateMap(area, e.direction)

	chars := e.terminal.Characters()
	coords := make([]motion.Coord, len(chars))
	for i, ch := range chars {
		coords[i] = ch.InputCoord
	}
	e.rng.Shuffle(len(coords), func(i, j int) { coords[i], coords[j] = coords[j], coords[i] })

	e.jumbled = make(map[*texel.Character]motion.Coord, len(chars))
	e.parts = make(map[*texel.Character]*unstableParts, len(chars))
	for i, ch := range chars {
		finalColor := ch.FinalColor(colorMap[ch.InputCoord])
		e.jumbled[ch] = coords[i]
		ch.Motion.SetCoordinate(coords[i])

		explosion, err := ch.Motion.NewPath("explosion", e.explosionSpeed, e.explosionEase)
		if err != nil {
			return err
		}
		explosion.NewWaypoint(e.edgeCoord(area))
		reassembly, err := ch.Motion.NewPath("reassembly", e.reassemblySpeed, e.reassemblyEase)
		if err != nil {
			return err
		}
		reassembly.NewWaypoint(ch.InputCoord)

		rumbleGradient, err := graphics.NewGradient([]tcell.Color{finalColor, e.unstableColor}, 25)
		if err != nil {
			return err
		}
		rumble, err := ch.Animation.NewScene("rumble")
		if err != nil {
			return err
		}
		if err := rumble.ApplyGradientToSymbols(rumbleGradient, []string{ch.InputSymbol}, 10); err != nil {
			return err
		}
		settleGradient, err := graphics.NewGradient([]tcell.Color{e.unstableColor, finalColor}, 12)
		if err != nil {
			return err
		}
		settle, err := ch.Animation.NewScene("final")
		if err != nil {
			return err
		}
		if err := settle.ApplyGradientToSymbols(settleGradient, []string{ch.InputSymbol}, 5); err != nil {
			return err
		}
		if err := ch.Animation.ActivateScene(rumble); err != nil {
			return err
		}
		e.parts[ch] = &unstableParts{explosion: explosion, reassembly: reassembly, settle: settle}
		e.terminal.SetVisibility(ch, true)
	}
	e.phase = phaseRumble
	e.rumbleDelay = unstableRumbleDelay
	e.hold = unstableExplosionHold
	return nil
}

// edgeCoord picks a random cell on one of the four edges of area.
func (e *unstableEffect) edgeCoord(area graphics.Area) motion.Coord {
	switch e.rng.IntN(4) {
	case 0:
		return motion.Coord{Column: area.Left, Row: e.randRange(area.Bottom+1, area.Top)}
	case 1:
		return motion.Coord{Column: area.Right, Row: e.randRange(area.Bottom+1, area.Top)}
	case 2:
		return motion.Coord{Column: e.randRange(area.Left+1, area.Right), Row: area.Bottom}
	default:
		return motion.Coord{Column: e.randRange(area.Left+1, area.Right), Row: area.Top}
	}
}

func (e *unstableEffect) Next() (texel.Frame, bool) {
	chars := e.terminal.Characters()
	if e.phase == phaseRumble {
		if e.rumbleStep < unstableRumbleTicks {
			e.rumbleStep++
			if e.rumbleStep > unstableRumbleWarmup && e.rumbleStep%e.rumbleDelay == 0 {
				return e.jolt(chars)
			}
			for _, ch := range chars {
				ch.Animation.Step()
			}
			return e.frame(false)
		}
		e.phase = phaseExplosion
		for _, ch := range chars {
			ch.Motion.ActivatePath(e.parts[ch].explosion)
			e.activate(ch)
		}
	}

	if e.phase == phaseExplosion {
		if len(e.active) > 0 {
			e.tick(nil)
			return e.frame(false)
		}
		if e.hold > 0 {
			e.hold--
			return e.frame(false)
		}
		e.phase = phaseReassembly
		for _, ch := range chars {
			parts := e.parts[ch]
			if err := ch.Animation.ActivateScene(parts.settle); err != nil {
				log.Printf("Effects: unstable: %v", err)
			}
			ch.Motion.ActivatePath(parts.reassembly)
			e.activate(ch)
		}
	}

	e.tick(nil)
	return e.frame(len(e.active) == 0)
}

// jolt shifts every character by the same random offset for one frame.
func (e *unstableEffect) jolt(chars []*texel.Character) (texel.Frame, bool) {
	dr, dc := e.randRange(-1, 1), e.randRange(-1, 1)
	for _, ch := range chars {
		c := ch.Coordinate()
		ch.Motion.SetCoordinate(motion.Coord{Column: c.Column + dc, Row: c.Row + dr})
		ch.Animation.Step()
	}
	frame, ok := e.frame(false)
	for _, ch := range chars {
		ch.Motion.SetCoordinate(e.jumbled[ch])
	}
	e.rumbleDelay = max(e.rumbleDelay-1, 1)
	return frame, ok
}
