// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/base.go
// Summary: Shared per-tick bookkeeping embedded by every effect.
// Usage: Embed effectBase, call activate when a character starts its work,
// tick once per Next, and finish with frame.
// Notes: A character stays in the active set until HasPendingWork is false.

package effects

import (
	"math/rand/v2"
	"time"

	"github.com/framegrace/texelfx/texel"
)

type effectBase struct {
	id       string
	terminal *texel.Terminal
	active   []*texel.Character
	done     bool
	rng      *rand.Rand
}

func newEffectBase(id string, terminal *texel.Terminal, seed int64) effectBase {
	return effectBase{id: id, terminal: terminal, rng: newRand(seed)}
}

// newRand returns a seeded generator. Seed 0 picks a time based seed.
func newRand(seed int64) *rand.Rand {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func (b *effectBase) ID() string {
	return b.id
}

// activate adds ch to the active set and makes it visible.
func (b *effectBase) activate(ch *texel.Character) {
	b.terminal.SetVisibility(ch, true)
	if ch.Active {
		return
	}
	ch.Active = true
	b.active = append(b.active, ch)
}

// tick advances every active character, runs after on each one, and then
// drops characters without pending work.
func (b *effectBase) tick(after func(*texel.Character)) {
	for _, ch := range b.active {
		ch.Tick()
		if after != nil {
			after(ch)
		}
	}
	kept := b.active[:0]
	for _, ch := range b.active {
		if ch.HasPendingWork() {
			kept = append(kept, ch)
			continue
		}
		ch.Active = false
	}
	for i := len(kept); i < len(b.active); i++ {
		b.active[i] = nil
	}
	b.active = kept
}

// frame composes the current tick. When finished is set the frame is the
// last one and subsequent calls report false.
func (b *effectBase) frame(finished bool) (texel.Frame, bool) {
	if b.done {
		return texel.Frame{}, false
	}
	if finished {
		b.done = true
	}
	return b.terminal.Frame(), true
}

// randRange returns an int in [lo, hi], or lo when the range is empty.
func (b *effectBase) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + b.rng.IntN(hi-lo+1)
}

// randFloat returns a float in [lo, hi).
func (b *effectBase) randFloat(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + b.rng.Float64()*(hi-lo)
}
