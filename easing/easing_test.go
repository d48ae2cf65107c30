package easing

import (
	"errors"
	"math"
	"testing"
)

func TestAllFunctionsPinEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Fatalf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestMonotonicCurvesStayInRange(t *testing.T) {
	curves := map[string]Func{
		"linear":       Linear,
		"smoothstep":   Smoothstep,
		"in_quad":      InQuad,
		"out_quad":     OutQuad,
		"in_out_quad":  InOutQuad,
		"in_out_cubic": InOutCubic,
		"out_expo":     OutExpo,
		"in_out_sine":  InOutSine,
	}
	for name, fn := range curves {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < -1e-9 || v > 1+1e-9 {
				t.Fatalf("%s: value %v out of [0,1] at step %d", name, v, i)
			}
			if v+1e-9 < prev {
				t.Fatalf("%s: curve decreased at step %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}

func TestByNameNormalizesInput(t *testing.T) {
	fn, err := ByName(" In-Out-Quad ")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if got := fn(0.25); got != InOutQuad(0.25) {
		t.Fatalf("expected in_out_quad, got %v", got)
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("wobble"); !errors.Is(err, ErrUnknownEasing) {
		t.Fatalf("expected ErrUnknownEasing, got %v", err)
	}
}

func TestSpringOvershoots(t *testing.T) {
	fn := Spring(DefaultSpringFrequency, 0.2)
	peak := 0.0
	for i := 0; i <= 100; i++ {
		if v := fn(float64(i) / 100); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Fatalf("expected under-damped spring to overshoot, peak %v", peak)
	}
}
