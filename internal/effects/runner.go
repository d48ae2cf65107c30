// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/runner.go
// Summary: Paces an effect and forwards its frames to a sink.
// Usage: The CLI builds a Runner around the chosen effect and the renderer and
// calls Run on its own goroutine.
// Notes: Cancelling the context stops the loop between frames.

package effects

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/framegrace/texelfx/texel"
)

// DefaultFrameRate is used when a non-positive rate is configured.
const DefaultFrameRate = 100

// Runner drives one effect to completion.
type Runner struct {
	effect   Effect
	sink     FrameSink
	interval time.Duration

	frames int
	last   texel.Frame
}

// NewRunner creates a runner emitting frameRate frames per second. A negative
// rate disables pacing.
func NewRunner(effect Effect, sink FrameSink, frameRate int) *Runner {
	var interval time.Duration
	switch {
	case frameRate == 0:
		interval = time.Second / DefaultFrameRate
	case frameRate > 0:
		interval = time.Second / time.Duration(frameRate)
	}
	return &Runner{effect: effect, sink: sink, interval: interval}
}

// Run prepares the effect and draws frames until it finishes or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.effect.Prepare(); err != nil {
		return fmt.Errorf("prepare %s: %w", r.effect.ID(), err)
	}
	log.Printf("Effects: running %s", r.effect.ID())

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	start := time.Now()
	for {
		frame, ok := r.effect.Next()
		if !ok {
			log.Printf("Effects: %s finished after %d frames in %s", r.effect.ID(), r.frames, time.Since(start).Round(time.Millisecond))
			return nil
		}
		r.frames++
		r.last = frame
		if r.sink != nil {
			if err := r.sink.Draw(frame); err != nil {
				return fmt.Errorf("draw frame %d: %w", r.frames, err)
			}
		}
		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}

// Frames returns how many frames were drawn.
func (r *Runner) Frames() int {
	return r.frames
}

// LastFrame returns the most recent frame.
func (r *Runner) LastFrame() texel.Frame {
	return r.last
}
