// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_tcell.go
// Summary: tcell backed ScreenDriver and the renderer that draws frames on it.
// Usage: The CLI wraps tcell.NewScreen; tests wrap a simulation screen.

package texel

import (
	"github.com/framegrace/texelfx/graphics"
	"github.com/gdamore/tcell/v2"
)

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error                { return d.screen.Init() }
func (d *TcellScreenDriver) Fini()                      { d.screen.Fini() }
func (d *TcellScreenDriver) Size() (int, int)           { return d.screen.Size() }
func (d *TcellScreenDriver) SetStyle(style tcell.Style) { d.screen.SetStyle(style) }
func (d *TcellScreenDriver) HideCursor()                { d.screen.HideCursor() }
func (d *TcellScreenDriver) Clear()                     { d.screen.Clear() }
func (d *TcellScreenDriver) Show()                      { d.screen.Show() }
func (d *TcellScreenDriver) PollEvent() tcell.Event     { return d.screen.PollEvent() }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}

func (d *TcellScreenDriver) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	return d.screen.GetContent(x, y)
}

// Underlying exposes the wrapped tcell.Screen.
func (d *TcellScreenDriver) Underlying() tcell.Screen {
	return d.screen
}

// Renderer draws frames onto a ScreenDriver, resolving colours through an
// injected cache.
type Renderer struct {
	driver ScreenDriver
	colors *graphics.ColorCache
}

// NewRenderer creates a renderer. A nil cache passes colours through.
func NewRenderer(driver ScreenDriver, colors *graphics.ColorCache) *Renderer {
	return &Renderer{driver: driver, colors: colors}
}

// Draw paints f anchored at the top-left corner of the screen and shows it.
// Cells outside the screen are clipped.
func (r *Renderer) Draw(f Frame) error {
	sw, sh := r.driver.Size()
	for y := 0; y < f.Height && y < sh; y++ {
		row := f.Cells[y]
		for x := 0; x < f.Width && x < sw; x++ {
			cell := row[x]
			if cell.Symbol == "" {
				continue
			}
			runes := []rune(cell.Symbol)
			r.driver.SetContent(x, y, runes[0], runes[1:], r.resolve(cell.Style))
		}
	}
	r.driver.Show()
	return nil
}

func (r *Renderer) resolve(style tcell.Style) tcell.Style {
	fg, bg, attrs := style.Decompose()
	out := tcell.StyleDefault.Attributes(attrs).Foreground(r.colors.Resolve(fg))
	if bg != tcell.ColorDefault {
		out = out.Background(r.colors.Resolve(bg))
	}
	return out
}
