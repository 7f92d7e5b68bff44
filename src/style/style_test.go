package style

import (
	"reflect"
	"testing"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
)

func TestResolveColorCyclesPalette(t *testing.T) {
	if len(Palette) != 7 {
		t.Fatalf("palette must have 7 entries, has %d", len(Palette))
	}
	for i := 0; i < 15; i++ {
		if got, want := ResolveColor("", i), Palette[i%7]; got != want {
			t.Fatalf("index %d => %q want %q", i, got, want)
		}
	}
	if got := ResolveColor(" #ff8800 ", 3); got != "#ff8800" {
		t.Fatalf("override ignored: %q", got)
	}
}

func TestResolveLineStyleDefaultsBySide(t *testing.T) {
	if ResolveLineStyle("", axis.Left) != Solid || ResolveLineStyle("", axis.Right) != Dashed {
		t.Fatalf("side defaults wrong")
	}
	if ResolveLineStyle(":", axis.Right) != Dotted {
		t.Fatalf("override ignored")
	}
}

func TestResolveLabel(t *testing.T) {
	if got := ResolveLabel("  Gen power  ", "POWR 5"); got != "Gen power" {
		t.Fatalf("got %q", got)
	}
	if got := ResolveLabel("   ", "POWR 5"); got != "POWR 5" {
		t.Fatalf("blank override should fall back, got %q", got)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"r", RGBA{255, 0, 0, 255}},
		{"Navy", RGBA{0, 0, 128, 255}},
		{"#1f77b4", RGBA{0x1f, 0x77, 0xb4, 255}},
		{"#fff", RGBA{255, 255, 255, 255}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil || got != c.want {
			t.Fatalf("ParseColor(%q) = %v, %v", c.in, got, err)
		}
	}
	for _, bad := range []string{"", "1f77b4", "#12345", "#gggggg", "chartreuse-ish"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("%q should not parse", bad)
		}
	}
	if (RGBA{0x1f, 0x77, 0xb4, 255}).Hex() != "#1f77b4" {
		t.Fatalf("hex round trip")
	}
}

func TestDashPattern(t *testing.T) {
	if DashPattern(Solid) != nil || DashPattern("weird") != nil {
		t.Fatalf("solid/unknown should be nil")
	}
	if !reflect.DeepEqual(DashPattern("--"), DashPattern("dashed")) || DashPattern("--") == nil {
		t.Fatalf("dashed aliases differ")
	}
	if len(DashPattern(DashDot)) != 4 {
		t.Fatalf("dash-dot needs 4 segments")
	}
}

func TestEveryPaletteColorParses(t *testing.T) {
	for _, name := range append(append([]string{}, Palette...), ColorNames()...) {
		if _, err := ParseColor(name); err != nil {
			t.Fatalf("palette color %q: %v", name, err)
		}
	}
}
