package selection

import (
	"errors"
	"testing"
)

var tokens = []string{"time", "2: VOLT 5", "3: POWR 5", "7: FREQ 5"}

func TestNewHasOneRow(t *testing.T) {
	m := New()
	if m.Len() != 1 {
		t.Fatalf("expected one initial row, got %d", m.Len())
	}
	if len(m.NonEmpty()) != 0 {
		t.Fatalf("initial row should be unset")
	}
}

func TestRemoveLastRowRejected(t *testing.T) {
	m := New()
	id := m.List()[0].ID
	err := m.Remove(id)
	if !errors.Is(err, ErrMinimumSeries) {
		t.Fatalf("expected ErrMinimumSeries, got %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("row count changed to %d", m.Len())
	}
}

func TestAddRemoveKeepsOrderAndIndexes(t *testing.T) {
	m := New()
	first := m.List()[0].ID
	a := m.Add(Selection{Channel: tokens[1]})
	b := m.Add(Selection{Channel: tokens[2], Color: "r"})
	if err := m.Remove(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	rows := m.List()
	if len(rows) != 2 || rows[0].ID != a || rows[1].ID != b {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if rows[0].Index != 0 || rows[1].Index != 1 {
		t.Fatalf("indexes not rebuilt: %+v", rows)
	}
	if err := m.Remove(999); !errors.Is(err, ErrUnknownRow) {
		t.Fatalf("expected ErrUnknownRow, got %v", err)
	}
}

func TestNonEmptyKeepsFullListIndex(t *testing.T) {
	m := New()
	m.Add(Selection{Channel: tokens[2]})
	got := m.NonEmpty()
	if len(got) != 1 || got[0].Index != 1 {
		t.Fatalf("expected one row at index 1, got %+v", got)
	}
}

func TestUpdate(t *testing.T) {
	m := New()
	id := m.List()[0].ID
	if err := m.Update(id, func(s *Selection) { s.Label = " Bus voltage " }); err != nil {
		t.Fatalf("update: %v", err)
	}
	r, ok := m.Get(id)
	if !ok || r.Label != " Bus voltage " {
		t.Fatalf("update not applied: %+v", r)
	}
}

func TestApplyDefaults(t *testing.T) {
	m := New()
	m.Add(Selection{Channel: "99: gone", Color: "k"})
	m.ApplyDefaults(tokens)
	if m.X().Channel != "time" {
		t.Fatalf("x = %q", m.X().Channel)
	}
	for _, r := range m.List() {
		if r.Channel != tokens[1] {
			t.Fatalf("row %d channel = %q", r.ID, r.Channel)
		}
	}
	if m.List()[1].Color != "k" {
		t.Fatalf("style override lost")
	}
	m.ApplyDefaults([]string{"time"})
	if m.List()[0].Channel != "time" {
		t.Fatalf("only-time dataset should select time, got %q", m.List()[0].Channel)
	}
}

func TestDefaultTokenFor(t *testing.T) {
	cases := []struct {
		row  int
		want string
	}{
		{0, "2: VOLT 5"},
		{1, "3: POWR 5"},
		{2, "7: FREQ 5"},
		{3, "2: VOLT 5"},
	}
	for _, c := range cases {
		if got := DefaultTokenFor(tokens, c.row); got != c.want {
			t.Fatalf("row %d => %q want %q", c.row, got, c.want)
		}
	}
	if DefaultTokenFor(nil, 0) != "" {
		t.Fatalf("no tokens should give empty selection")
	}
}
