// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: easing/easing.go
// Summary: Progress remapping functions shared by motion paths and effects.
// Usage: Pass an easing.Func to motion.Motion.NewPath or look one up by name.
// Notes: Every function maps [0,1] onto a curve that starts at 0 and ends at 1;
// back and elastic variants overshoot in between.

package easing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Func maps normalized progress in [0,1] to eased progress.
type Func func(t float64) float64

// ErrUnknownEasing is returned by ByName for unregistered names.
var ErrUnknownEasing = errors.New("easing: unknown function")

const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

var (
	// Linear - No easing, constant speed
	Linear Func = func(t float64) float64 { return t }

	// Smoothstep - Smooth S-curve, accelerates at start, decelerates at end
	Smoothstep Func = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}

	// Smootherstep - Even smoother S-curve with zero derivatives at 0 and 1
	Smootherstep Func = func(t float64) float64 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	InSine Func = func(t float64) float64 {
		return 1 - math.Cos(t*math.Pi/2)
	}

	OutSine Func = func(t float64) float64 {
		return math.Sin(t * math.Pi / 2)
	}

	InOutSine Func = func(t float64) float64 {
		return -(math.Cos(math.Pi*t) - 1) / 2
	}

	// InQuad - Quadratic ease-in (slow start, accelerating)
	InQuad Func = func(t float64) float64 {
		return t * t
	}

	// OutQuad - Quadratic ease-out (fast start, decelerating)
	OutQuad Func = func(t float64) float64 {
		return t * (2.0 - t)
	}

	InOutQuad Func = func(t float64) float64 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	InCubic Func = func(t float64) float64 {
		return t * t * t
	}

	OutCubic Func = func(t float64) float64 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	InOutCubic Func = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}

	InQuart Func = func(t float64) float64 {
		return t * t * t * t
	}

	OutQuart Func = func(t float64) float64 {
		return 1 - math.Pow(1-t, 4)
	}

	InOutQuart Func = func(t float64) float64 {
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 4)/2
	}

	InQuint Func = func(t float64) float64 {
		return t * t * t * t * t
	}

	OutQuint Func = func(t float64) float64 {
		return 1 - math.Pow(1-t, 5)
	}

	InOutQuint Func = func(t float64) float64 {
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 5)/2
	}

	InExpo Func = func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	}

	OutExpo Func = func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	}

	InOutExpo Func = func(t float64) float64 {
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		}
		return (2 - math.Pow(2, -20*t+10)) / 2
	}

	InCirc Func = func(t float64) float64 {
		return 1 - math.Sqrt(1-t*t)
	}

	OutCirc Func = func(t float64) float64 {
		return math.Sqrt(1 - (t-1)*(t-1))
	}

	InOutCirc Func = func(t float64) float64 {
		if t < 0.5 {
			return (1 - math.Sqrt(1-4*t*t)) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
	}

	InBack Func = func(t float64) float64 {
		return backC3*t*t*t - backC1*t*t
	}

	OutBack Func = func(t float64) float64 {
		return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
	}

	InOutBack Func = func(t float64) float64 {
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
	}

	InElastic Func = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
	}

	OutElastic Func = func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
	}

	InOutElastic Func = func(t float64) float64 {
		switch {
		case t == 0 || t == 1:
			return t
		case t < 0.5:
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
		}
		return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
	}

	InBounce Func = func(t float64) float64 {
		return 1 - OutBounce(1-t)
	}

	OutBounce Func = outBounce

	InOutBounce Func = func(t float64) float64 {
		if t < 0.5 {
			return (1 - outBounce(1-2*t)) / 2
		}
		return (1 + outBounce(2*t-1)) / 2
	}
)

func outBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}

var named = map[string]Func{
	"linear":         Linear,
	"smoothstep":     Smoothstep,
	"smootherstep":   Smootherstep,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_quart":       InQuart,
	"out_quart":      OutQuart,
	"in_out_quart":   InOutQuart,
	"in_quint":       InQuint,
	"out_quint":      OutQuint,
	"in_out_quint":   InOutQuint,
	"in_expo":        InExpo,
	"out_expo":       OutExpo,
	"in_out_expo":    InOutExpo,
	"in_circ":        InCirc,
	"out_circ":       OutCirc,
	"in_out_circ":    InOutCirc,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
	"spring":         Spring(DefaultSpringFrequency, DefaultSpringDamping),
}

// ByName resolves an easing function from its snake_case name. Names are
// case-insensitive and accept dashes in place of underscores.
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if fn, ok := named[key]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// Names lists every name accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
