package texel

import (
	"testing"

	"github.com/framegrace/texelfx/graphics"
	"github.com/gdamore/tcell/v2"
)

func newSimDriver(t *testing.T, w, h int) *TcellScreenDriver {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return NewTcellScreenDriver(screen)
}

func TestRendererDrawsFrame(t *testing.T) {
	driver := newSimDriver(t, 10, 3)
	term := NewTerminal("ab\nc", Config{})
	for _, ch := range term.Characters() {
		ch.Visible = true
	}
	r := NewRenderer(driver, nil)
	if err := r.Draw(term.Frame()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for _, tc := range []struct {
		x, y int
		want rune
	}{{0, 0, 'a'}, {1, 0, 'b'}, {0, 1, 'c'}, {1, 1, ' '}} {
		if got, _, _, _ := driver.GetContent(tc.x, tc.y); got != tc.want {
			t.Fatalf("cell (%d,%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRendererResolvesColoursThroughCache(t *testing.T) {
	driver := newSimDriver(t, 4, 1)
	f := NewFrame(2, 1)
	f.Set(0, 0, "x", graphics.Visual{Symbol: "x", Color: tcell.NewRGBColor(250, 0, 0)}.Style())

	NewRenderer(driver, graphics.NewColorCache(graphics.XtermColors)).Draw(f)
	_, _, style, _ := driver.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if fg.IsRGB() {
		t.Fatalf("expected an xterm palette colour, got %v", fg)
	}

	NewRenderer(driver, graphics.NewColorCache(graphics.NoColor)).Draw(f)
	_, _, style, _ = driver.GetContent(0, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorDefault {
		t.Fatalf("NoColor should strip the foreground, got %v", fg)
	}
}

func TestRendererClipsToScreen(t *testing.T) {
	driver := newSimDriver(t, 2, 1)
	f := NewFrame(5, 3)
	f.Set(4, 2, "z", tcell.StyleDefault)
	f.Set(1, 0, "y", tcell.StyleDefault)
	if err := NewRenderer(driver, nil).Draw(f); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got, _, _, _ := driver.GetContent(1, 0); got != 'y' {
		t.Fatalf("visible cell not drawn, got %q", got)
	}
}
