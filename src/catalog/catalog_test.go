package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func sampleDataset() Dataset {
	return Dataset{
		Title: "Fault at bus 5",
		Path:  "/data/cases/fault.csv",
		Descriptions: map[int]string{
			1: "Time(s)",
			3: "POWR 5 [GEN 13.8]",
			2: "VOLT 5 [BUS5 230]",
		},
		Data: map[int][]float64{
			3: {100, 101, 99},
			2: {1.0, 0.98, 1.01},
		},
		Time: []float64{0, 0.01, 0.02},
	}
}

func TestTokensOrderedAndTimeFirst(t *testing.T) {
	c, err := New(sampleDataset())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.Tokens()
	want := []string{"time", "2: VOLT 5 [BUS5 230]", "3: POWR 5 [GEN 13.8]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokens = %v want %v", got, want)
	}
	if c.ChannelCount() != 2 {
		t.Fatalf("channel count = %d want 2", c.ChannelCount())
	}
	if c.Dir() != "/data/cases" {
		t.Fatalf("dir = %q", c.Dir())
	}
}

func TestResolve(t *testing.T) {
	c, _ := New(sampleDataset())
	ys, err := c.Resolve("3: POWR 5 [GEN 13.8]")
	if err != nil || len(ys) != 3 || ys[0] != 100 {
		t.Fatalf("resolve channel 3: %v %v", ys, err)
	}
	ts, err := c.Resolve("time")
	if err != nil || ts[2] != 0.02 {
		t.Fatalf("resolve time: %v %v", ts, err)
	}
	// description part is ignored; only the id counts
	if _, err := c.Resolve("2: renamed"); err != nil {
		t.Fatalf("resolve by id only: %v", err)
	}
}

func TestResolveMissing(t *testing.T) {
	c, _ := New(sampleDataset())
	for _, tok := range []string{"9: nowhere", "abc", "", "1: Time(s)"} {
		if _, err := c.Resolve(tok); !errors.Is(err, ErrChannelNotFound) {
			t.Fatalf("token %q: expected ErrChannelNotFound, got %v", tok, err)
		}
	}
	var none *Catalog
	if _, err := none.Resolve("time"); !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("nil catalog should report ErrChannelNotFound, got %v", err)
	}
}

func TestNewRejectsMismatchedLengths(t *testing.T) {
	ds := sampleDataset()
	ds.Data[4] = []float64{1, 2}
	if _, err := New(ds); !errors.Is(err, ErrSampleCount) {
		t.Fatalf("expected ErrSampleCount, got %v", err)
	}

	noTime := Dataset{
		Descriptions: map[int]string{1: "A", 2: "B"},
		Data: map[int][]float64{
			1: {1, 2, 3},
			2: {5},
		},
	}
	if _, err := New(noTime); !errors.Is(err, ErrSampleCount) {
		t.Fatalf("ragged channels without a time base: expected ErrSampleCount, got %v", err)
	}
	noTime.Data[2] = []float64{5, 6, 7}
	if _, err := New(noTime); err != nil {
		t.Fatalf("equal channels without a time base should load: %v", err)
	}
}

func TestLabelFor(t *testing.T) {
	cases := []struct{ in, want string }{
		{"time", TimeLabel},
		{"2: VOLT 5 [BUS5 230]", "VOLT 5 [BUS5 230]"},
		{"17", "17"},
		{"4: ANGL: machine 1", "ANGL: machine 1"},
	}
	for _, c := range cases {
		if got := LabelFor(c.in); got != c.want {
			t.Fatalf("LabelFor(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestParseToken(t *testing.T) {
	id, isTime, err := ParseToken(" 12: FREQ ")
	if err != nil || isTime || id != 12 {
		t.Fatalf("ParseToken: %d %v %v", id, isTime, err)
	}
	if _, isTime, _ := ParseToken("time"); !isTime {
		t.Fatalf("time not detected")
	}
}
