package style

import (
	"testing"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
)

func TestLocationsAreEleven(t *testing.T) {
	if len(Locations) != 11 {
		t.Fatalf("expected 11 legend locations, got %d", len(Locations))
	}
	seen := map[Location]bool{}
	for _, l := range Locations {
		if seen[l] {
			t.Fatalf("duplicate location %q", l)
		}
		seen[l] = true
	}
}

func TestParseLocation(t *testing.T) {
	if l, ok := ParseLocation("  Upper   LEFT "); !ok || l != UpperLeft {
		t.Fatalf("got %q %v", l, ok)
	}
	if l, ok := ParseLocation("top"); ok || l != Best {
		t.Fatalf("unknown location should fall back to best, got %q %v", l, ok)
	}
}

func TestResolveLegendAnchorNeedsBothFields(t *testing.T) {
	p := ResolveLegend(LegendFields{Location: "lower right", FrameOn: true, AnchorX: "1.02", AnchorY: "0.5"})
	if p.Anchor == nil || p.Anchor.X != 1.02 || p.Anchor.Y != 0.5 || p.Location != LowerRight || !p.FrameOn {
		t.Fatalf("unexpected placement %+v", p)
	}
	for _, f := range []LegendFields{
		{AnchorX: "0.5"},
		{AnchorX: "0.5", AnchorY: "x"},
		{AnchorY: "0.5"},
	} {
		if p := ResolveLegend(f); p.Anchor != nil {
			t.Fatalf("anchor should be ignored for %+v", f)
		}
	}
}

func TestBuildLegendsSkipsUnlabeledAxes(t *testing.T) {
	p := Placement{Location: Center}
	left := []Entry{{Label: "V", Color: "b"}, {Label: "", Color: "g"}}
	right := []Entry{{Label: " ", Color: "r"}}
	got := BuildLegends(left, right, p)
	if len(got) != 1 || got[0].Axis != axis.Left || len(got[0].Entries) != 1 {
		t.Fatalf("unexpected legends %+v", got)
	}

	right[0].Label = "P"
	got = BuildLegends(left, right, p)
	if len(got) != 2 || got[1].Axis != axis.Right {
		t.Fatalf("expected left and right legends, got %+v", got)
	}
	if got[0].Placement != got[1].Placement {
		t.Fatalf("legends must share placement")
	}
	if len(BuildLegends(nil, nil, p)) != 0 {
		t.Fatalf("no entries, no legends")
	}
}
