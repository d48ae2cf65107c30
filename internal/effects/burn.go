// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/burn.go
// Summary: Characters ignite one at a time, build up as blocks, and burn down
// to their final colour.

package effects

import (
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
)

var burnBuildOrder = []string{".", "▖", "▄", "▙", "█", "▜", "▀"}

func init() {
	Register("burn", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		return &burnEffect{
			effectBase:    newEffectBase("burn", term, parseSeed(cfg)),
			burnedColor:   parseColorOrDefault(cfg, "burned_color", tcell.NewRGBColor(0x25, 0x25, 0x25)),
			flameColor:    parseColorOrDefault(cfg, "flame_color", tcell.NewRGBColor(0xff, 0x96, 0x00)),
			finalStops:    parseColorsOrDefault(cfg, "final_gradient_stops", mustColors("8A008A", "00D1FF", "FFFFFF")),
			finalSteps:    parseIntsOrDefault(cfg, "final_gradient_steps", []int{12}),
			frameDuration: parsePositiveIntOrDefault(cfg, "frame_duration", 4),
		}, nil
	})
}

type burnEffect struct {
	effectBase
	burnedColor   tcell.Color
	flameColor    tcell.Color
	finalStops    []tcell.Color
	finalSteps    []int
	frameDuration int

	pending []*texel.Character
}

func (e *burnEffect) Prepare() error {
	final, err := graphics.NewGradient(e.finalStops, e.finalSteps...)
	if err != nil {
		return err
	}
	fire, err := graphics.NewGradient([]tcell.Color{tcell.NewRGBColor(255, 255, 255), e.flameColor}, 12)
	if err != nil {
		return err
	}
	burned, err := graphics.NewGradient([]tcell.Color{e.flameColor, e.burnedColor}, 7)
	if err != nil {
		return err
	}
	top := max(e.terminal.OutputArea().Top, 1)

	columns := e.terminal.CharactersGrouped(texel.ColumnLeftToRight)
	for remaining(columns) {
		var open []int
		for i, col := range columns {
			if len(col) > 0 {
				open = append(open, i)
			}
		}
		pick := open[e.rng.IntN(len(open))]
		ch := columns[pick][0]
		columns[pick] = columns[pick][1:]

		scene, err := ch.Animation.NewScene("burn")
		if err != nil {
			return err
		}
		if err := addBlocks(scene, burnBuildOrder[:5], fire, e.frameDuration); err != nil {
			return err
		}
		if err := addBlocks(scene, burnBuildOrder[4:], burned, e.frameDuration); err != nil {
			return err
		}
		finalColor := ch.FinalColor(final.ColorAt(float64(ch.InputCoord.Row) / float64(top)))
		if err := scene.AddFrame(ch.InputSymbol, 1, finalColor, 0); err != nil {
			return err
		}
		if err := ch.Animation.ActivateScene(scene); err != nil {
			return err
		}
		e.terminal.SetVisibility(ch, false)
		e.pending = append(e.pending, ch)
	}
	return nil
}

// addBlocks gives each block three consecutive gradient colours, advancing
// the window by two so neighbouring blocks share a colour.
func addBlocks(scene *graphics.Scene, blocks []string, g *graphics.Gradient, duration int) error {
	start := 0
	for _, block := range blocks {
		for i := start; i < start+3 && i < g.Len(); i++ {
			if err := scene.AddFrame(block, duration, g.At(i), 0); err != nil {
				return err
			}
		}
		start += 2
	}
	return nil
}

func remaining(groups [][]*texel.Character) bool {
	for _, g := range groups {
		if len(g) > 0 {
			return true
		}
	}
	return false
}

func (e *burnEffect) Next() (texel.Frame, bool) {
	if len(e.pending) > 0 {
		e.activate(e.pending[0])
		e.pending = e.pending[1:]
	}
	e.tick(nil)
	return e.frame(len(e.pending) == 0 && len(e.active) == 0)
}
