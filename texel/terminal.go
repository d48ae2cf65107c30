// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/terminal.go
// Summary: Decomposes input text into characters laid out on the output area.
// Usage: Effects receive a Terminal, enumerate its characters in the order
// they need, and call Frame once per tick to compose the output.
// Notes: Rows grow upward; the input is anchored to the top-left corner of the
// output area.

package texel

import (
	"log"
	"sort"
	"strings"

	"github.com/framegrace/texelfx/graphics"
	"github.com/framegrace/texelfx/motion"
	"github.com/mattn/go-runewidth"
)

// Config controls how the input is laid out.
type Config struct {
	// Width and Height enlarge the output area beyond the input bounds.
	Width  int
	Height int

	// SyntaxColors tokenises the input and stores token colours in
	// Character.InputColor.
	SyntaxColors bool
	// Language names the chroma lexer. Empty means detect.
	Language string
	// Filename helps language detection when Language is empty.
	Filename string
	// SyntaxStyle names the chroma style. Empty means the default style.
	SyntaxStyle string
}

// Terminal owns the characters of one effect run.
type Terminal struct {
	area graphics.Area

	inputWidth  int
	inputHeight int

	chars []*Character
	byPos map[motion.Coord]*Character
}

// NewTerminal lays out input. Tabs must already be expanded.
func NewTerminal(input string, cfg Config) *Terminal {
	lines := strings.Split(input, "\n")
	inputWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > inputWidth {
			inputWidth = w
		}
	}
	inputHeight := len(lines)

	width := max(inputWidth, cfg.Width, 1)
	height := max(inputHeight, cfg.Height, 1)

	t := &Terminal{
		area:        graphics.Area{Left: 0, Bottom: 0, Right: width - 1, Top: height - 1},
		inputWidth:  inputWidth,
		inputHeight: inputHeight,
		byPos:       make(map[motion.Coord]*Character),
	}

	for lineIdx, line := range lines {
		row := t.area.Top - lineIdx
		col := 0
		var last *Character
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				if last != nil {
					last.InputSymbol += string(r)
					last.Animation.SetVisual(graphics.Visual{Symbol: last.InputSymbol})
				}
				continue
			}
			if r != ' ' {
				coord := motion.Coord{Column: col, Row: row}
				ch := NewCharacter(len(t.chars), string(r), coord)
				t.chars = append(t.chars, ch)
				t.byPos[coord] = ch
				last = ch
			} else {
				last = nil
			}
			col += w
		}
	}

	if cfg.SyntaxColors {
		if err := applySyntaxColors(t, input, cfg); err != nil {
			log.Printf("Terminal: syntax colouring disabled: %v", err)
		}
	}
	return t
}

// OutputArea returns the inclusive bounds of the canvas.
func (t *Terminal) OutputArea() graphics.Area {
	return t.area
}

// InputSize returns the width and height of the input text.
func (t *Terminal) InputSize() (int, int) {
	return t.inputWidth, t.inputHeight
}

// Characters returns every character in input order.
func (t *Terminal) Characters() []*Character {
	return t.chars
}

// CharacterAt returns the character whose input coordinate is c.
func (t *Terminal) CharacterAt(c motion.Coord) (*Character, bool) {
	ch, ok := t.byPos[c]
	return ch, ok
}

// SetVisibility shows or hides a character.
func (t *Terminal) SetVisibility(ch *Character, visible bool) {
	ch.Visible = visible
}

// CharactersGrouped partitions the characters into ordered groups.
func (t *Terminal) CharactersGrouped(order Order) [][]*Character {
	keyOf, descending := order.groupKey()
	groups := make(map[int][]*Character)
	for _, ch := range t.chars {
		k := keyOf(ch.InputCoord)
		groups[k] = append(groups[k], ch)
	}
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	if descending {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	out := make([][]*Character, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i].InputCoord, group[j].InputCoord
			if a.Row != b.Row {
				return a.Row > b.Row
			}
			return a.Column < b.Column
		})
		out = append(out, group)
	}
	return out
}

// CharactersSorted flattens CharactersGrouped.
func (t *Terminal) CharactersSorted(order Order) []*Character {
	out := make([]*Character, 0, len(t.chars))
	for _, group := range t.CharactersGrouped(order) {
		out = append(out, group...)
	}
	return out
}

// Frame composes the visible characters at their current coordinates.
func (t *Terminal) Frame() Frame {
	f := NewFrame(t.area.Width(), t.area.Height())
	drawn := make([]*Character, 0, len(t.chars))
	for _, ch := range t.chars {
		if ch.Visible {
			drawn = append(drawn, ch)
		}
	}
	sort.SliceStable(drawn, func(i, j int) bool {
		return drawn[i].Layer < drawn[j].Layer
	})
	for _, ch := range drawn {
		c := ch.Coordinate()
		if !t.area.Contains(c) {
			continue
		}
		v := ch.Visual()
		f.Set(c.Column-t.area.Left, t.area.Top-c.Row, v.Symbol, v.Style())
	}
	return f
}
