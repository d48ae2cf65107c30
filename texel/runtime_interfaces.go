// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texel

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the rendering surface. It mirrors the subset of
// tcell.Screen functionality the renderer and the CLI need so tests can draw
// into a simulation screen or a stub.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	Clear()
	Show()
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (rune, []rune, tcell.Style, int)
}
