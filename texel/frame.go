// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/frame.go
// Summary: Immutable grid snapshot produced by Terminal.Frame.

package texel

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one grid position. The trailing half of a wide glyph has an empty
// symbol.
type Cell struct {
	Symbol string
	Style  tcell.Style
}

// Frame is a rendered grid; Cells[y][x] with y = 0 at the top.
type Frame struct {
	Width  int
	Height int
	Cells  [][]Cell
}

// NewFrame allocates a blank frame.
func NewFrame(width, height int) Frame {
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Symbol: " ", Style: tcell.StyleDefault}
		}
		cells[y] = row
	}
	return Frame{Width: width, Height: height, Cells: cells}
}

// Set writes a symbol, blanking the following cell for wide glyphs.
func (f Frame) Set(x, y int, symbol string, style tcell.Style) {
	if y < 0 || y >= f.Height || x < 0 || x >= f.Width {
		return
	}
	f.Cells[y][x] = Cell{Symbol: symbol, Style: style}
	if runewidth.StringWidth(symbol) > 1 && x+1 < f.Width {
		f.Cells[y][x+1] = Cell{Symbol: "", Style: style}
	}
}

// String renders the plain text of the frame with trailing blanks removed.
func (f Frame) String() string {
	lines := make([]string, len(f.Cells))
	for y, row := range f.Cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteString(c.Symbol)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
