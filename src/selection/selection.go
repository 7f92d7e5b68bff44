// Package selection holds the user's series choices: one X channel and an
// ordered list of Y rows, each with optional style overrides.
package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
)

// ErrMinimumSeries is returned when removing the last remaining Y row.
var ErrMinimumSeries = errors.New("at least one Y variable is required")

// ErrUnknownRow is returned for row ids that do not exist.
var ErrUnknownRow = errors.New("unknown Y row")

// Selection is one row of the series table. Empty strings mean "unset":
// an empty Channel is a valid placeholder that is never plotted, and empty
// overrides fall back to computed defaults.
type Selection struct {
	Channel   string
	Color     string
	LineStyle string
	Label     string
}

// Empty reports whether the row has no channel chosen.
func (s Selection) Empty() bool { return strings.TrimSpace(s.Channel) == "" }

// Row is a Y selection with its stable id and its position in the list.
type Row struct {
	ID    int
	Index int
	Selection
}

// Model owns the X selection and the Y rows. The zero value is not usable; call New.
type Model struct {
	x      Selection
	rows   []Row
	nextID int
}

// New returns a model with a single empty Y row.
func New() *Model {
	m := &Model{}
	m.Add(Selection{})
	return m
}

// X returns the X selection.
func (m *Model) X() Selection { return m.x }

// SetX replaces the X channel token.
func (m *Model) SetX(token string) { m.x.Channel = token }

// Add appends a Y row and returns its id.
func (m *Model) Add(sel Selection) int {
	m.nextID++
	m.rows = append(m.rows, Row{ID: m.nextID, Selection: sel})
	m.reindex()
	return m.nextID
}

// Remove deletes the row with the given id. The last row cannot be removed.
func (m *Model) Remove(id int) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownRow, id)
	}
	if len(m.rows) <= 1 {
		return ErrMinimumSeries
	}
	m.rows = append(m.rows[:idx], m.rows[idx+1:]...)
	m.reindex()
	return nil
}

// Get returns the row with the given id.
func (m *Model) Get(id int) (Row, bool) {
	idx := m.indexOf(id)
	if idx < 0 {
		return Row{}, false
	}
	return m.rows[idx], true
}

// Update applies fn to the selection of row id.
func (m *Model) Update(id int, fn func(*Selection)) error {
	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownRow, id)
	}
	fn(&m.rows[idx].Selection)
	return nil
}

// Len is the number of Y rows, never below one.
func (m *Model) Len() int { return len(m.rows) }

// List returns a copy of the Y rows in insertion order.
func (m *Model) List() []Row {
	out := make([]Row, len(m.rows))
	copy(out, m.rows)
	return out
}

// NonEmpty returns the rows that have a channel chosen. Row.Index keeps the
// position in the full list, which drives default color cycling.
func (m *Model) NonEmpty() []Row {
	out := make([]Row, 0, len(m.rows))
	for _, r := range m.rows {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}

// ApplyDefaults resets channel choices after a dataset load: X goes to time and
// every Y row to the first real channel. Style overrides are kept.
func (m *Model) ApplyDefaults(tokens []string) {
	m.x.Channel = ""
	if len(tokens) > 0 {
		m.x.Channel = catalog.TimeToken
	}
	for i := range m.rows {
		m.rows[i].Channel = firstChannel(tokens)
	}
}

// DefaultTokenFor picks the channel a newly added row starts with: the next
// channel after the ones already shown, wrapping back to the first one.
func DefaultTokenFor(tokens []string, rowIndex int) string {
	if len(tokens) == 0 {
		return ""
	}
	next := rowIndex + 1
	if next < len(tokens) {
		return tokens[next]
	}
	return firstChannel(tokens)
}

func firstChannel(tokens []string) string {
	switch {
	case len(tokens) > 1:
		return tokens[1]
	case len(tokens) == 1:
		return tokens[0]
	}
	return ""
}

func (m *Model) indexOf(id int) int {
	for i, r := range m.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) reindex() {
	for i := range m.rows {
		m.rows[i].Index = i
	}
}
