// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package easing

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 0.4

	springSamples = 120
)

// Spring samples a damped spring travelling from 0 to 1 and returns an easing
// that replays it. Under-damped springs overshoot before settling. The curve is
// pinned so that Spring(...)(0) == 0 and Spring(...)(1) == 1.
func Spring(angularFrequency, damping float64) Func {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples/2), angularFrequency, damping)
	samples := make([]float64, springSamples+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		samples[i] = pos
	}
	samples[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(math.Floor(x))
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
