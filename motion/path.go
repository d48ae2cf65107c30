// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/path.go
// Summary: Waypoints and the speed/easing governed paths that visit them.
// Usage: Created through Motion.NewPath; waypoints appended with NewWaypoint.

package motion

import (
	"math"
	"strconv"

	"github.com/framegrace/texelfx/easing"
)

// Coord is a grid cell. Columns grow to the right and rows grow upward from
// the bottom-left corner of the output area.
type Coord struct {
	Column int
	Row    int
}

// Distance returns the euclidean distance between two coordinates.
func (c Coord) Distance(other Coord) float64 {
	dc := float64(other.Column - c.Column)
	dr := float64(other.Row - c.Row)
	return math.Hypot(dc, dr)
}

// Waypoint is a single target coordinate within a Path.
type Waypoint struct {
	ID    string
	Coord Coord
	// Hold is the number of ticks spent resting on the waypoint after it is
	// reached, before the path moves on or completes.
	Hold int
}

// Path is an ordered route through one or more waypoints.
type Path struct {
	ID    string
	Speed float64
	Ease  easing.Func
	// Loop restarts the path at its first waypoint instead of completing.
	Loop bool

	waypoints []*Waypoint

	index       int
	origin      Coord
	currentStep int
	maxSteps    int
	holding     int
	complete    bool
}

// NewWaypoint appends a waypoint targeting coord and returns it.
func (p *Path) NewWaypoint(coord Coord) *Waypoint {
	wp := &Waypoint{ID: strconv.Itoa(len(p.waypoints)), Coord: coord}
	p.waypoints = append(p.waypoints, wp)
	return wp
}

// AddWaypoint appends an existing waypoint. Order of appends is preserved.
func (p *Path) AddWaypoint(wp *Waypoint) {
	if wp == nil {
		return
	}
	p.waypoints = append(p.waypoints, wp)
}

// Waypoints returns the ordered waypoints of the path.
func (p *Path) Waypoints() []*Waypoint {
	return p.waypoints
}

// Complete reports whether the final waypoint has been reached.
func (p *Path) Complete() bool {
	return p.complete
}

// Step returns the step count within the current segment and the total
// number of steps the segment takes.
func (p *Path) Step() (current, max int) {
	return p.currentStep, p.maxSteps
}

func (p *Path) target() *Waypoint {
	if p.index < 0 || p.index >= len(p.waypoints) {
		return nil
	}
	return p.waypoints[p.index]
}

// reset prepares the path for travel starting at origin.
func (p *Path) reset(origin Coord) {
	p.index = 0
	p.complete = false
	p.holding = 0
	p.beginSegment(origin)
}

func (p *Path) beginSegment(origin Coord) {
	p.origin = origin
	p.currentStep = 0
	p.maxSteps = 0
	if wp := p.target(); wp != nil {
		p.maxSteps = segmentSteps(origin, wp.Coord, p.Speed)
	}
}

// segmentSteps converts a distance into a tick count at the given speed.
func segmentSteps(from, to Coord, speed float64) int {
	distance := from.Distance(to)
	if distance == 0 {
		return 0
	}
	return int(math.Ceil(distance / speed))
}

// position interpolates the coordinate at the current step.
func (p *Path) position() Coord {
	wp := p.target()
	if p.maxSteps == 0 || p.currentStep >= p.maxSteps {
		return wp.Coord
	}
	progress := p.Ease(float64(p.currentStep) / float64(p.maxSteps))
	return Coord{
		Column: p.origin.Column + int(math.Round(float64(wp.Coord.Column-p.origin.Column)*progress)),
		Row:    p.origin.Row + int(math.Round(float64(wp.Coord.Row-p.origin.Row)*progress)),
	}
}
