// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/interfaces.go
// Summary: Contracts between effects, the runner and the rendering target.
// Usage: Every effect in this package implements Effect; the CLI's renderer
// implements FrameSink.

package effects

import "github.com/framegrace/texelfx/texel"

// Effect animates the characters of a texel.Terminal.
type Effect interface {
	// ID returns the registry identifier of the effect.
	ID() string
	// Prepare builds paths and scenes. It is called once before Next.
	Prepare() error
	// Next advances one tick and returns the composed frame. It returns
	// false once the final frame has already been delivered.
	Next() (texel.Frame, bool)
}

// FrameSink consumes frames produced by a Runner.
type FrameSink interface {
	Draw(texel.Frame) error
}
