// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/character.go
// Summary: A single animated glyph owning its motion and animation.
// Usage: Created by NewTerminal, one per non-space input rune; effects drive
// it through Tick and react to scene events via OnEvent.

package texel

import (
	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/motion"
	"github.com/gdamore/tcell/v2"
)

// EventListener is notified of animation events raised by a character.
type EventListener func(ch *Character, ev graphics.Event)

// Character is the unit of animation.
type Character struct {
	ID          int
	InputSymbol string
	InputCoord  motion.Coord
	// InputColor is the syntax colour of the glyph, or tcell.ColorDefault.
	InputColor tcell.Color
	// Layer orders overlapping characters; higher layers draw on top.
	Layer int

	Visible bool
	Active  bool

	Motion    *motion.Motion
	Animation *graphics.Animation

	listeners []EventListener
}

// NewCharacter creates an invisible character resting at its input
// coordinate and showing its input symbol.
func NewCharacter(id int, symbol string, coord motion.Coord) *Character {
	ch := &Character{
		ID:          id,
		InputSymbol: symbol,
		InputCoord:  coord,
		InputColor:  tcell.ColorDefault,
		Motion:      motion.New(coord),
	}
	ch.Animation = graphics.NewAnimation(ch.Motion, ch, graphics.Visual{Symbol: symbol})
	return ch
}

// OnEvent registers a listener for scene events.
func (c *Character) OnEvent(fn EventListener) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// HandleEvent fans an animation event out to the registered listeners.
func (c *Character) HandleEvent(ev graphics.Event) {
	for _, fn := range c.listeners {
		fn(c, ev)
	}
}

// Tick moves the character and then steps its animation, so synced scenes
// read up to date motion progress.
func (c *Character) Tick() {
	c.Motion.Tick()
	c.Animation.Step()
}

// HasPendingWork reports whether the character still has an active path or
// a non-looping scene with frames left to play.
func (c *Character) HasPendingWork() bool {
	if !c.Motion.MovementComplete() {
		return true
	}
	s := c.Animation.ActiveScene()
	return s != nil && !s.Looping && s.Remaining() > 0
}

// Coordinate returns the character's current position.
func (c *Character) Coordinate() motion.Coord {
	return c.Motion.Coordinate()
}

// Visual returns what the character currently shows.
func (c *Character) Visual() graphics.Visual {
	return c.Animation.Visual()
}

// FinalColor returns the syntax colour when present, otherwise fallback.
func (c *Character) FinalColor(fallback tcell.Color) tcell.Color {
	if c.InputColor != tcell.ColorDefault {
		return c.InputColor
	}
	return fallback
}
