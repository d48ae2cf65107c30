// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/scene.go
// Summary: Scenes are timed frame sequences played by an Animation.
// Usage: Created through Animation.NewScene and filled with AddFrame or the
// gradient helpers before activation.
// Notes: pending and played always concatenate to the frames in the order
// they were added.

package graphics

import (
	"github.com/framegrace/texelfx/motion"
	"github.com/gdamore/tcell/v2"
)

// Scene is a sequence of frames for one character.
type Scene struct {
	ID      int
	Name    string
	Looping bool
	// SyncWaypoint binds playback to motion progress toward this waypoint
	// instead of elapsed ticks.
	SyncWaypoint *motion.Waypoint

	pending []Frame
	played  []Frame
	elapsed int
}

// AddFrame appends a frame.
func (s *Scene) AddFrame(symbol string, duration int, color tcell.Color, attrs tcell.AttrMask) error {
	f, err := NewFrame(Visual{Symbol: symbol, Color: color, Attrs: attrs}, duration)
	if err != nil {
		return err
	}
	s.pending = append(s.pending, f)
	return nil
}

// Frames returns every frame in insertion order.
func (s *Scene) Frames() []Frame {
	out := make([]Frame, 0, len(s.played)+len(s.pending))
	out = append(out, s.played...)
	return append(out, s.pending...)
}

// Len returns the total number of frames.
func (s *Scene) Len() int {
	return len(s.played) + len(s.pending)
}

// Remaining returns how many frames have not been played yet.
func (s *Scene) Remaining() int {
	return len(s.pending)
}

// Played returns how many frames have been played.
func (s *Scene) Played() int {
	return len(s.played)
}

// ApplyGradient recolours every frame with a gradient from start to end that
// has one step per frame.
func (s *Scene) ApplyGradient(start, end tcell.Color) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	g, err := NewGradient([]tcell.Color{start, end}, n)
	if err != nil {
		return err
	}
	i := 0
	for idx := range s.played {
		s.played[idx].Visual.Color = g.At(i)
		i++
	}
	for idx := range s.pending {
		s.pending[idx].Visual.Color = g.At(i)
		i++
	}
	return nil
}

// ApplyGradientToSymbols appends frames covering the whole spectrum of g.
// When there are more colours than symbols each symbol spans several
// consecutive colours, and the other way around.
func (s *Scene) ApplyGradientToSymbols(g *Gradient, symbols []string, duration int) error {
	if len(symbols) == 0 {
		return nil
	}
	total := max(len(symbols), g.Len())
	for i := 0; i < total; i++ {
		symbol := symbols[i*len(symbols)/total]
		color := g.At(i * g.Len() / total)
		if err := s.AddFrame(symbol, duration, color, 0); err != nil {
			return err
		}
	}
	return nil
}

// Reset moves every played frame back to the pending queue.
func (s *Scene) Reset() {
	if len(s.played) == 0 {
		s.elapsed = 0
		return
	}
	s.pending = append(s.played, s.pending...)
	s.played = nil
	s.elapsed = 0
}

func (s *Scene) first() Visual {
	if len(s.pending) > 0 {
		return s.pending[0].Visual
	}
	return s.played[0].Visual
}

// nextVisual plays one tick of the head frame.
func (s *Scene) nextVisual() Visual {
	head := s.pending[0]
	s.elapsed++
	if s.elapsed >= head.Duration {
		s.elapsed = 0
		s.played = append(s.played, head)
		s.pending = s.pending[1:]
		if s.Looping && len(s.pending) == 0 {
			s.pending = s.played
			s.played = nil
		}
	}
	return head.Visual
}

// consumeAll marks every frame as played and returns the final visual.
func (s *Scene) consumeAll() Visual {
	last := s.pending[len(s.pending)-1].Visual
	s.played = append(s.played, s.pending...)
	s.pending = nil
	s.elapsed = 0
	return last
}
