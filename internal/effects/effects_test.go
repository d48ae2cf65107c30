// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"errors"
	"testing"

	"github.com/framegrace/texelfx/texel"
)

const sampleInput = "Hello, world\n  indented line\nlast"

// drain runs eff until it stops producing frames and returns the last frame.
func drain(t *testing.T, eff Effect) (texel.Frame, int) {
	t.Helper()
	if err := eff.Prepare(); err != nil {
		t.Fatalf("%s: prepare failed: %v", eff.ID(), err)
	}
	var last texel.Frame
	frames := 0
	for {
		frame, ok := eff.Next()
		if !ok {
			break
		}
		last = frame
		frames++
		if frames > 100000 {
			t.Fatalf("%s: did not finish", eff.ID())
		}
	}
	if _, ok := eff.Next(); ok {
		t.Fatalf("%s: Next reported a frame after finishing", eff.ID())
	}
	return last, frames
}

func TestEveryEffectEndsOnInputText(t *testing.T) {
	ids := RegisteredIDs()
	if len(ids) == 0 {
		t.Fatalf("no effects registered")
	}
	for _, id := range ids {
		t.Run(id, func(t *testing.T) {
			term := texel.NewTerminal(sampleInput, texel.Config{})
			eff, err := Create(id, term, EffectConfig{"seed": 7})
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if eff.ID() != id {
				t.Fatalf("effect ID %q, want %q", eff.ID(), id)
			}
			last, frames := drain(t, eff)
			if frames == 0 {
				t.Fatalf("no frames produced")
			}
			if got := last.String(); got != sampleInput {
				t.Fatalf("final frame\n%s\nwant\n%s", got, sampleInput)
			}
			for _, ch := range term.Characters() {
				if ch.Coordinate() != ch.InputCoord {
					t.Fatalf("%q ended at %v, want %v", ch.InputSymbol, ch.Coordinate(), ch.InputCoord)
				}
			}
		})
	}
}

func TestEffectsHandleEmptyInput(t *testing.T) {
	for _, id := range RegisteredIDs() {
		term := texel.NewTerminal("", texel.Config{})
		eff, err := Create(id, term, EffectConfig{"seed": 3})
		if err != nil {
			t.Fatalf("%s: create: %v", id, err)
		}
		last, _ := drain(t, eff)
		if got := last.String(); got != "" {
			t.Fatalf("%s: expected blank final frame, got %q", id, got)
		}
	}
}

func TestSeededEffectsAreDeterministic(t *testing.T) {
	for _, id := range []string{"burn", "sparkler", "shootingstar", "unstable"} {
		run := func() int {
			term := texel.NewTerminal(sampleInput, texel.Config{})
			eff, err := Create(id, term, EffectConfig{"seed": 42})
			if err != nil {
				t.Fatalf("%s: create: %v", id, err)
			}
			_, frames := drain(t, eff)
			return frames
		}
		if a, b := run(), run(); a != b {
			t.Fatalf("%s: same seed gave %d and %d frames", id, a, b)
		}
	}
}

func TestWipeRevealsGroupsInOrder(t *testing.T) {
	term := texel.NewTerminal("abc", texel.Config{})
	eff, err := Create("wipe", term, EffectConfig{
		"direction":               "column_left_to_right",
		"gradient_steps":          2,
		"gradient_frame_duration": 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := eff.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	frame, ok := eff.Next()
	if !ok {
		t.Fatalf("expected a frame")
	}
	if got := frame.String(); got != "a" {
		t.Fatalf("first frame %q, want %q", got, "a")
	}
	frame, _ = eff.Next()
	if got := frame.String(); got != "ab" {
		t.Fatalf("second frame %q, want %q", got, "ab")
	}
}

func TestWipeFallsBackOnUnknownDirection(t *testing.T) {
	term := texel.NewTerminal("ab", texel.Config{})
	eff, err := Create("wipe", term, EffectConfig{"direction": "sideways"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if eff.(*wipeEffect).order != texel.ColumnLeftToRight {
		t.Fatalf("expected default order")
	}
}

func TestRowSlideRejectsUnknownDirection(t *testing.T) {
	term := texel.NewTerminal("ab", texel.Config{})
	if _, err := Create("rowslide", term, EffectConfig{"direction": "up"}); err == nil {
		t.Fatalf("expected error for direction up")
	}
}

func TestSparklerRejectsInvertedRanges(t *testing.T) {
	term := texel.NewTerminal("ab", texel.Config{})
	if _, err := Create("sparkler", term, EffectConfig{"min_duration": 10, "max_duration": 5}); err == nil {
		t.Fatalf("expected error for inverted durations")
	}
	if _, err := Create("sparkler", term, EffectConfig{"speed_min": 2.0, "speed_max": 1.0}); err == nil {
		t.Fatalf("expected error for inverted speeds")
	}
	eff, err := Create("sparkler", term, EffectConfig{"position": "somewhere"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := eff.Prepare(); err == nil {
		t.Fatalf("expected prepare to reject unknown position")
	}
}

func TestSparklerOrigin(t *testing.T) {
	term := texel.NewTerminal("abcde\nfghij\nklmno", texel.Config{})
	area := term.OutputArea()
	cases := map[string][2]int{
		"center": {2, 1},
		"nw":     {0, 2},
		"se":     {3, 0},
		"e":      {3, 1},
		"s":      {2, 0},
	}
	for pos, want := range cases {
		got, err := sparklerOrigin(pos, area)
		if err != nil {
			t.Fatalf("%s: %v", pos, err)
		}
		if got.Column != want[0] || got.Row != want[1] {
			t.Fatalf("%s: got %v, want col %d row %d", pos, got, want[0], want[1])
		}
	}
}

func TestRegistry(t *testing.T) {
	want := []string{"burn", "rowslide", "shootingstar", "sparkler", "unstable", "wipe"}
	ids := RegisteredIDs()
	for _, id := range want {
		if _, ok := Lookup(id); !ok {
			t.Fatalf("%s not registered (have %v)", id, ids)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}

	term := texel.NewTerminal("ab", texel.Config{})
	if _, err := Create("nope", term, nil); !errors.Is(err, ErrUnknownEffect) {
		t.Fatalf("expected ErrUnknownEffect, got %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	Register("wipe", func(*texel.Terminal, EffectConfig) (Effect, error) { return nil, nil })
}

func TestReleasedCharactersUsePreparedPathsAndScenes(t *testing.T) {
	term := texel.NewTerminal("abcde\nfghij\nklmno", texel.Config{})
	eff, err := Create("sparkler", term, EffectConfig{"seed": 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	sparkler := eff.(*sparklerEffect)
	if err := sparkler.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, sp := range sparkler.pending {
		if path, err := sp.ch.Motion.QueryPath("spray"); err != nil || path != sp.path {
			t.Fatalf("%q: pending path is not the registered spray path", sp.ch.InputSymbol)
		}
		if scene, err := sp.ch.Animation.QueryScene("sparks"); err != nil || scene != sp.scene {
			t.Fatalf("%q: pending scene is not the registered sparks scene", sp.ch.InputSymbol)
		}
	}
	next := sparkler.pending[len(sparkler.pending)-1]
	sparkler.Next()
	if next.ch.Animation.ActiveScene() != next.scene {
		t.Fatalf("%q: released character is not playing its sparks scene", next.ch.InputSymbol)
	}
	origin, _ := sparklerOrigin("center", term.OutputArea())
	if next.ch.InputCoord != origin && next.ch.Motion.ActivePath() != next.path {
		t.Fatalf("%q: released character is not travelling its spray path", next.ch.InputSymbol)
	}

	term = texel.NewTerminal("ab\ncd", texel.Config{})
	eff, err = Create("shootingstar", term, EffectConfig{"seed": 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	stars := eff.(*shootingStarEffect)
	if err := stars.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, ch := range term.Characters() {
		s := stars.stars[ch]
		if s == nil {
			t.Fatalf("%q: no prepared star", ch.InputSymbol)
		}
		if path, _ := ch.Motion.QueryPath("fall"); path != s.fall {
			t.Fatalf("%q: prepared fall path mismatch", ch.InputSymbol)
		}
		if scene, _ := ch.Animation.QueryScene("landing"); scene != s.landing {
			t.Fatalf("%q: prepared landing scene mismatch", ch.InputSymbol)
		}
	}

	term = texel.NewTerminal("ab\ncd", texel.Config{})
	eff, err = Create("unstable", term, EffectConfig{"seed": 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	unstable := eff.(*unstableEffect)
	if err := unstable.Prepare(); err != nil {
		t.Fatalf("prepare: %v", err)
	}
	for _, ch := range term.Characters() {
		parts := unstable.parts[ch]
		if parts == nil {
			t.Fatalf("%q: no prepared parts", ch.InputSymbol)
		}
		if path, _ := ch.Motion.QueryPath("reassembly"); path != parts.reassembly {
			t.Fatalf("%q: prepared reassembly path mismatch", ch.InputSymbol)
		}
		if scene, _ := ch.Animation.QueryScene("final"); scene != parts.settle {
			t.Fatalf("%q: prepared final scene mismatch", ch.InputSymbol)
		}
	}
}
