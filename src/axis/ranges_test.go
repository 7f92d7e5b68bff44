package axis

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPaddedBoundsProportional(t *testing.T) {
	b := DefaultBounds([]float64{2.0, 4.0, 6.0})
	if !near(b.Min, 1.8) || !near(b.Max, 6.2) {
		t.Fatalf("got [%v,%v] want [1.8,6.2]", b.Min, b.Max)
	}
}

func TestPaddedBoundsConstant(t *testing.T) {
	b := DefaultBounds([]float64{5, 5, 5})
	if b.Min != 4 || b.Max != 6 {
		t.Fatalf("got [%v,%v] want [4,6]", b.Min, b.Max)
	}
}

func TestDefaultBoundsUnion(t *testing.T) {
	b := DefaultBounds([]float64{0, 1}, []float64{9, 10})
	if !near(b.Min, -0.5) || !near(b.Max, 10.5) {
		t.Fatalf("got [%v,%v]", b.Min, b.Max)
	}
	if b := DefaultBounds([]float64{math.NaN()}); b.Min != -1 || b.Max != 1 {
		t.Fatalf("no data should fall back to [-1,1], got %+v", b)
	}
}

func TestResolveLimitsWritesBackOnlyWhenEmpty(t *testing.T) {
	f := LimitFields{}
	r := ResolveLimits(&f, Bounds{Min: 1.8, Max: 6.2})
	if r.UserPinned || r.Min != 1.8 || r.Max != 6.2 {
		t.Fatalf("unexpected range %+v", r)
	}
	if f.Min != "1.80" || f.Max != "6.20" {
		t.Fatalf("defaults not written back: %+v", f)
	}
	// second generation: the written values are now user values
	r = ResolveLimits(&f, Bounds{Min: 0, Max: 100})
	if !r.UserPinned || r.Min != 1.8 || r.Max != 6.2 {
		t.Fatalf("written-back values should win: %+v", r)
	}
}

func TestResolveLimitsUserValueNeverOverwritten(t *testing.T) {
	f := LimitFields{Max: "10"}
	for i := 0; i < 2; i++ {
		r := ResolveLimits(&f, Bounds{Min: -3, Max: 3})
		if r.Max != 10 || r.Min != -3 {
			t.Fatalf("pass %d: range %+v", i, r)
		}
		if f.Max != "10" {
			t.Fatalf("pass %d: field overwritten to %q", i, f.Max)
		}
	}
}

func TestResolveLimitsUnparseableIgnoredSilently(t *testing.T) {
	f := LimitFields{Min: "abc", Max: "1e"}
	r := ResolveLimits(&f, Bounds{Min: 2, Max: 3})
	if r.UserPinned || r.Min != 2 || r.Max != 3 {
		t.Fatalf("garbage should fall back to computed: %+v", r)
	}
	if f.Min != "abc" || f.Max != "1e" {
		t.Fatalf("garbage input must be left as typed: %+v", f)
	}
}

func TestParseFloatField(t *testing.T) {
	if v, ok := ParseFloatField(" 4.5 "); !ok || v != 4.5 {
		t.Fatalf("trimmed parse failed")
	}
	for _, bad := range []string{"", "NaN", "inf", "1,5"} {
		if _, ok := ParseFloatField(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}
