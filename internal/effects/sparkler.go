// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/sparkler.go
// Summary: Characters spray out of a single point and flicker through spark
// colours on their way to the input position.

package effects

import (
	"fmt"
	"log"
	"strings"

	"github.com/framegrace/texelfx/easing"
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/motion"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
)

func init() {
	Register("sparkler", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		minDur := parsePositiveIntOrDefault(cfg, "min_duration", 20)
		maxDur := parsePositiveIntOrDefault(cfg, "max_duration", 35)
		if maxDur < minDur {
			return nil, fmt.Errorf("sparkler: max_duration %d below min_duration %d", maxDur, minDur)
		}
		speedMin := parsePositiveFloatOrDefault(cfg, "speed_min", 0.2)
		speedMax := parsePositiveFloatOrDefault(cfg, "speed_max", 0.8)
		if speedMax < speedMin {
			return nil, fmt.Errorf("sparkler: speed_max %v below speed_min %v", speedMax, speedMin)
		}
		return &sparklerEffect{
			effectBase:  newEffectBase("sparkler", term, parseSeed(cfg)),
			position:    strings.ToLower(parseStringOrDefault(cfg, "position", "center")),
			colors:      parseColorsOrDefault(cfg, "colors", []tcell.Color{tcell.PaletteColor(231), tcell.PaletteColor(11), tcell.PaletteColor(202)}),
			minDuration: minDur,
			maxDuration: maxDur,
			speedMin:    speedMin,
			speedMax:    speedMax,
			ease:        parseEasingOrDefault(cfg, "easing", easing.OutExpo),
		}, nil
	})
}

type sparklerEffect struct {
	effectBase
	position    string
	colors      []tcell.Color
	minDuration int
	maxDuration int
	speedMin    float64
	speedMax    float64
	ease        easing.Func

	pending []sparkle
}

// sparkle is a character waiting to be released with its spray path and
// spark scene.
type sparkle struct {
	ch    *texel.Character
	path  *motion.Path
	scene *graphics.Scene
}

// sparklerOrigin maps a compass position onto the output area.
func sparklerOrigin(position string, area graphics.Area) (motion.Coord, error) {
	midCol, midRow := area.Right/2, area.Top/2
	right := max(area.Right-1, area.Left)
	switch position {
	case "center", "":
		return motion.Coord{Column: midCol, Row: midRow}, nil
	case "n":
		return motion.Coord{Column: midCol, Row: area.Top}, nil
	case "nw":
		return motion.Coord{Column: area.Left, Row: area.Top}, nil
	case "w":
		return motion.Coord{Column: area.Left, Row: midRow}, nil
	case "sw":
		return motion.Coord{Column: area.Left, Row: area.Bottom}, nil
	case "s":
		return motion.Coord{Column: midCol, Row: area.Bottom}, nil
	case "se":
		return motion.Coord{Column: right, Row: area.Bottom}, nil
	case "e":
		return motion.Coord{Column: right, Row: midRow}, nil
	case "ne":
		return motion.Coord{Column: right, Row: area.Top}, nil
	}
	return motion.Coord{}, fmt.Errorf("sparkler: unknown position %q", position)
}

func (e *sparklerEffect) Prepare() error {
	origin, err := sparklerOrigin(e.position, e.terminal.OutputArea())
	if err != nil {
		return err
	}
	for _, ch := range e.terminal.Characters() {
		ch.Motion.SetCoordinate(origin)
		path, err := ch.Motion.NewPath("spray", e.randFloat(e.speedMin, e.speedMax), e.ease)
		if err != nil {
			return err
		}
		path.NewWaypoint(ch.InputCoord)

		scene, err := ch.Animation.NewScene("sparks")
		if err != nil {
			return err
		}
		colors := append([]tcell.Color(nil), e.colors...)
		e.rng.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
		for _, c := range colors {
			if err := scene.AddFrame(ch.InputSymbol, e.randRange(e.minDuration, e.maxDuration), c, 0); err != nil {
				return err
			}
		}
		if err := scene.AddFrame(ch.InputSymbol, 1, ch.InputColor, 0); err != nil {
			return err
		}
		e.pending = append(e.pending, sparkle{ch: ch, path: path, scene: scene})
	}
	e.rng.Shuffle(len(e.pending), func(i, j int) { e.pending[i], e.pending[j] = e.pending[j], e.pending[i] })
	return nil
}

func (e *sparklerEffect) Next() (texel.Frame, bool) {
	for n := e.randRange(1, 5); n > 0 && len(e.pending) > 0; n-- {
		sp := e.pending[len(e.pending)-1]
		e.pending = e.pending[:len(e.pending)-1]
		sp.ch.Motion.ActivatePath(sp.path)
		if err := sp.ch.Animation.ActivateScene(sp.scene); err != nil {
			log.Printf("Effects: sparkler: %v", err)
		}
		e.activate(sp.ch)
	}
	e.tick(nil)
	return e.frame(len(e.pending) == 0 && len(e.active) == 0)
}
