package graphics

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want tcell.Color
	}{
		{"ff9200", tcell.NewRGBColor(0xff, 0x92, 0x00)},
		{"#8A008A", tcell.NewRGBColor(0x8a, 0x00, 0x8a)},
		{" 00d1ff ", tcell.NewRGBColor(0x00, 0xd1, 0xff)},
		{"196", tcell.PaletteColor(196)},
		{"0", tcell.PaletteColor(0)},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "256", "-1", "zzzzzz", "#12345", "1234567"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ParseColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseColor("1a2b3c")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got := Hex(c); got != "1a2b3c" {
		t.Fatalf("Hex = %q", got)
	}
}

func TestColorCacheXterm(t *testing.T) {
	cache := NewColorCache(XtermColors)
	red := tcell.NewRGBColor(255, 0, 0)
	mapped := cache.Resolve(red)
	if mapped.IsRGB() {
		t.Fatalf("expected palette colour, got %v", mapped)
	}
	if r, g, b := mapped.RGB(); r != 255 || g != 0 || b != 0 {
		t.Fatalf("nearest xterm colour for red is %d,%d,%d", r, g, b)
	}
	cache.Resolve(red)
	cache.Resolve(tcell.NewRGBColor(1, 2, 250))
	if cache.Len() != 2 {
		t.Fatalf("expected 2 memoised colours, got %d", cache.Len())
	}
	if got := cache.Resolve(tcell.PaletteColor(33)); got != tcell.PaletteColor(33) {
		t.Fatalf("palette colours should pass through, got %v", got)
	}
}

func TestColorCacheModes(t *testing.T) {
	c := tcell.NewRGBColor(10, 20, 30)
	if got := NewColorCache(NoColor).Resolve(c); got != tcell.ColorDefault {
		t.Fatalf("NoColor resolved to %v", got)
	}
	if got := NewColorCache(TrueColor).Resolve(c); got != c {
		t.Fatalf("TrueColor resolved to %v", got)
	}
	var nilCache *ColorCache
	if got := nilCache.Resolve(c); got != c {
		t.Fatalf("nil cache should pass through, got %v", got)
	}
}
