// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/gradient.go
// Summary: Multi-stop colour gradients and directional coordinate maps.
// Usage: Built once while an effect prepares and shared read-only by every
// character afterwards.

package graphics

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/framegrace/texelfx/motion"
	"github.com/gdamore/tcell/v2"
)

var (
	// ErrMismatchedStops is returned when per-segment steps do not line up
	// with the number of gradient segments.
	ErrMismatchedStops = errors.New("graphics: steps do not match gradient stops")
	// ErrInvalidSteps is returned for a step count below 1.
	ErrInvalidSteps = errors.New("graphics: gradient steps must be at least 1")
)

// Direction selects the gradient axis of a coordinate map.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal
	Radial
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Diagonal:
		return "diagonal"
	case Radial:
		return "radial"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection resolves a direction name.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "diagonal":
		return Diagonal, nil
	case "radial":
		return Radial, nil
	}
	return Horizontal, fmt.Errorf("graphics: unknown gradient direction %q", name)
}

// Area is an inclusive rectangle of grid cells.
type Area struct {
	Left, Bottom, Right, Top int
}

// Width returns the number of columns covered by the area.
func (a Area) Width() int { return a.Right - a.Left + 1 }

// Height returns the number of rows covered by the area.
func (a Area) Height() int { return a.Top - a.Bottom + 1 }

// Contains reports whether c lies within the area.
func (a Area) Contains(c motion.Coord) bool {
	return c.Column >= a.Left && c.Column <= a.Right && c.Row >= a.Bottom && c.Row <= a.Top
}

// Center returns the cell nearest the middle of the area.
func (a Area) Center() motion.Coord {
	return motion.Coord{Column: (a.Left + a.Right) / 2, Row: (a.Bottom + a.Top) / 2}
}

// Gradient is an immutable sequence of colours interpolated between stops.
type Gradient struct {
	spectrum []tcell.Color
}

// NewGradient builds the spectrum for stops. With no steps every segment has
// a single step. One value applies to every segment; otherwise there must be
// exactly one value per segment.
func NewGradient(stops []tcell.Color, steps ...int) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: no stops", ErrInvalidColor)
	}
	normalized := make([]tcell.Color, len(stops))
	for i, s := range stops {
		c, err := Normalize(s)
		if err != nil {
			return nil, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		normalized[i] = c
	}

	segments := len(stops) - 1
	perSegment := make([]int, segments)
	switch {
	case len(steps) == 0:
		for i := range perSegment {
			perSegment[i] = 1
		}
	case len(steps) == 1:
		for i := range perSegment {
			perSegment[i] = steps[0]
		}
		if steps[0] < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, steps[0])
		}
	case len(steps) == segments:
		copy(perSegment, steps)
	default:
		return nil, fmt.Errorf("%w: %d stops, %d steps", ErrMismatchedStops, len(stops), len(steps))
	}
	for _, n := range perSegment {
		if n < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, n)
		}
	}

	spectrum := []tcell.Color{normalized[0]}
	for i := 0; i < segments; i++ {
		spectrum = append(spectrum, interpolate(normalized[i], normalized[i+1], perSegment[i])...)
	}
	return &Gradient{spectrum: spectrum}, nil
}

// MustGradient is NewGradient for fixed, known-good inputs. It panics on error.
func MustGradient(stops []tcell.Color, steps ...int) *Gradient {
	g, err := NewGradient(stops, steps...)
	if err != nil {
		panic(err)
	}
	return g
}

// interpolate returns the n colours after start, ending exactly on end.
func interpolate(start, end tcell.Color, n int) []tcell.Color {
	sr, sg, sb := start.RGB()
	er, eg, eb := end.RGB()
	dr := floorDiv(er-sr, int32(n))
	dg := floorDiv(eg-sg, int32(n))
	db := floorDiv(eb-sb, int32(n))
	out := make([]tcell.Color, 0, n)
	for i := int32(1); i < int32(n); i++ {
		out = append(out, tcell.NewRGBColor(clampChannel(sr+dr*i), clampChannel(sg+dg*i), clampChannel(sb+db*i)))
	}
	return append(out, end)
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampChannel(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Spectrum returns the generated colours in order.
func (g *Gradient) Spectrum() []tcell.Color {
	return append([]tcell.Color(nil), g.spectrum...)
}

// Len returns the spectrum length.
func (g *Gradient) Len() int {
	return len(g.spectrum)
}

// At returns the i-th spectrum colour, clamped to the valid range.
func (g *Gradient) At(i int) tcell.Color {
	if i < 0 {
		i = 0
	}
	if i >= len(g.spectrum) {
		i = len(g.spectrum) - 1
	}
	return g.spectrum[i]
}

// ColorAt returns the spectrum entry nearest to fraction of the way along.
func (g *Gradient) ColorAt(fraction float64) tcell.Color {
	fraction = math.Max(0, math.Min(1, fraction))
	return g.spectrum[int(math.RoundToEven(fraction*float64(len(g.spectrum)-1)))]
}

// CoordinateMap assigns a colour to every cell of area according to the
// cell's normalised position along direction.
func (g *Gradient) CoordinateMap(area Area, direction Direction) map[motion.Coord]tcell.Color {
	out := make(map[motion.Coord]tcell.Color, area.Width()*area.Height())
	spanCols := float64(max(1, area.Right-area.Left))
	spanRows := float64(max(1, area.Top-area.Bottom))
	center := area.Center()
	maxDistance := radialDistance(center, motion.Coord{Column: area.Left, Row: area.Bottom})
	if d := radialDistance(center, motion.Coord{Column: area.Right, Row: area.Top}); d > maxDistance {
		maxDistance = d
	}

	for row := area.Bottom; row <= area.Top; row++ {
		for col := area.Left; col <= area.Right; col++ {
			coord := motion.Coord{Column: col, Row: row}
			var fraction float64
			switch direction {
			case Vertical:
				fraction = float64(row-area.Bottom) / spanRows
			case Diagonal:
				fraction = (float64(row-area.Bottom)*2 + float64(col-area.Left)) / (spanRows*2 + spanCols)
			case Radial:
				if maxDistance > 0 {
					fraction = radialDistance(center, coord) / maxDistance
				}
			default:
				fraction = float64(col-area.Left) / spanCols
			}
			out[coord] = g.ColorAt(fraction)
		}
	}
	return out
}

// radialDistance doubles the row delta since terminal cells are roughly twice
// as tall as they are wide.
func radialDistance(a, b motion.Coord) float64 {
	return math.Hypot(float64(b.Column-a.Column), float64(b.Row-a.Row)*2)
}
