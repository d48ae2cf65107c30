// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: motion/motion.go
// Summary: Per-character movement along named paths.
// Usage: Each texel.Character owns one Motion; effects build paths during
// preparation and the character ticks the motion once per frame.
// Notes: Ticking without an active path never moves the coordinate.

package motion

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/framegrace/texelfx/easing"
)

var (
	// ErrInvalidSpeed is returned when a path is created with speed <= 0.
	ErrInvalidSpeed = errors.New("motion: path speed must be greater than 0")
	// ErrDuplicatePath is returned when a path name is already registered.
	ErrDuplicatePath = errors.New("motion: duplicate path")
	// ErrPathNotFound is returned by QueryPath for unknown names.
	ErrPathNotFound = errors.New("motion: path not found")
)

// Motion owns a character's current coordinate and its paths.
type Motion struct {
	current Coord
	paths   map[string]*Path
	active  *Path
}

// New creates a motion resting at origin.
func New(origin Coord) *Motion {
	return &Motion{
		current: origin,
		paths:   make(map[string]*Path),
	}
}

// Coordinate returns the current coordinate.
func (m *Motion) Coordinate() Coord {
	return m.current
}

// SetCoordinate teleports the motion. The active path, if any, keeps its
// current segment origin.
func (m *Motion) SetCoordinate(c Coord) {
	m.current = c
}

// NewPath registers a path. An empty name is replaced by the registration
// index. A nil ease defaults to linear.
func (m *Motion) NewPath(name string, speed float64, ease easing.Func) (*Path, error) {
	if speed <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	if name == "" {
		name = strconv.Itoa(len(m.paths))
	}
	if _, exists := m.paths[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, name)
	}
	if ease == nil {
		ease = easing.Linear
	}
	p := &Path{ID: name, Speed: speed, Ease: ease}
	m.paths[name] = p
	return p, nil
}

// QueryPath looks up a registered path.
func (m *Motion) QueryPath(name string) (*Path, error) {
	p, ok := m.paths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, name)
	}
	return p, nil
}

// ActivatePath makes p the active path and starts it from the current
// coordinate.
func (m *Motion) ActivatePath(p *Path) {
	if p == nil {
		return
	}
	p.reset(m.current)
	m.active = p
}

// DeactivatePath clears the active path without completing it.
func (m *Motion) DeactivatePath() {
	m.active = nil
}

// ActivePath returns the active path or nil.
func (m *Motion) ActivePath() *Path {
	return m.active
}

// ActiveWaypoint returns the waypoint the active path is heading to, or nil
// when no path is active.
func (m *Motion) ActiveWaypoint() *Waypoint {
	if m.active == nil {
		return nil
	}
	return m.active.target()
}

// SegmentProgress reports the step counters of the active segment.
func (m *Motion) SegmentProgress() (current, max int) {
	if m.active == nil {
		return 0, 0
	}
	return m.active.Step()
}

// MovementComplete reports whether there is no active path left to travel.
func (m *Motion) MovementComplete() bool {
	return m.active == nil
}

// Tick advances the active path by one step.
func (m *Motion) Tick() {
	p := m.active
	if p == nil {
		return
	}
	wp := p.target()
	if wp == nil {
		p.complete = true
		m.active = nil
		return
	}

	if p.holding > 0 {
		p.holding--
		if p.holding == 0 {
			m.advance(p)
		}
		return
	}

	if p.currentStep < p.maxSteps {
		p.currentStep++
	}
	m.current = p.position()
	if p.currentStep < p.maxSteps {
		return
	}
	if wp.Hold > 0 {
		p.holding = wp.Hold
		return
	}
	m.advance(p)
}

// advance moves the path to its next waypoint, loops, or completes it.
func (m *Motion) advance(p *Path) {
	if p.index+1 < len(p.waypoints) {
		p.index++
		p.beginSegment(m.current)
		return
	}
	if p.Loop {
		p.index = 0
		p.beginSegment(m.current)
		return
	}
	p.complete = true
	if m.active == p {
		m.active = nil
	}
}
