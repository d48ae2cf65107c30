// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/wipe.go
// Summary: Reveals the text group by group along a row, column or diagonal.

package effects

import (
	"log"

	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/texel"
	"github.com/gdamore/tcell/v2"
)

func init() {
	Register("wipe", func(term *texel.Terminal, cfg EffectConfig) (Effect, error) {
		order, err := texel.ParseOrder(parseStringOrDefault(cfg, "direction", "column_left_to_right"))
		if err != nil {
			log.Printf("Effects: wipe: %v", err)
			order = texel.ColumnLeftToRight
		}
		return &wipeEffect{
			effectBase:    newEffectBase("wipe", term, 0),
			order:         order,
			gradient:      parseColorsOrDefault(cfg, "gradient", mustColors("833ab4", "fd1d1d", "fcb045")),
			gradientSteps: parseIntsOrDefault(cfg, "gradient_steps", []int{10}),
			frameDuration: parsePositiveIntOrDefault(cfg, "gradient_frame_duration", 7),
			delay:         max(parseIntOrDefault(cfg, "delay", 0), 0),
		}, nil
	})
}

type wipeEffect struct {
	effectBase
	order         texel.Order
	gradient      []tcell.Color
	gradientSteps []int
	frameDuration int
	delay         int

	groups    [][]*texel.Character
	countdown int
}

func (e *wipeEffect) Prepare() error {
	var g *graphics.Gradient
	if len(e.gradient) > 1 {
		var err error
		if g, err = graphics.NewGradient(e.gradient, e.gradientSteps...); err != nil {
			return err
		}
	}
	e.groups = e.terminal.CharactersGrouped(e.order)
	for _, group := range e.groups {
		for _, ch := range group {
			if len(e.gradient) == 0 {
				continue
			}
			scene, err := ch.Animation.NewScene("gradient")
			if err != nil {
				return err
			}
			if g != nil {
				for _, color := range g.Spectrum() {
					if err := scene.AddFrame(ch.InputSymbol, e.frameDuration, color, 0); err != nil {
						return err
					}
				}
			} else if err := scene.AddFrame(ch.InputSymbol, 1, e.gradient[0], 0); err != nil {
				return err
			}
			if ch.InputColor != tcell.ColorDefault {
				if err := scene.AddFrame(ch.InputSymbol, 1, ch.InputColor, 0); err != nil {
					return err
				}
			}
			if err := ch.Animation.ActivateScene(scene); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *wipeEffect) Next() (texel.Frame, bool) {
	if e.countdown == 0 {
		if len(e.groups) > 0 {
			for _, ch := range e.groups[0] {
				e.activate(ch)
			}
			e.groups = e.groups[1:]
		}
		e.countdown = e.delay
	} else {
		e.countdown--
	}
	e.tick(nil)
	return e.frame(len(e.groups) == 0 && len(e.active) == 0)
}
