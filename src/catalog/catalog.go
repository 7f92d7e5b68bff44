// Package catalog is a read-only view over one loaded dataset: the channel
// descriptions, their sample sequences and the synthetic "time" channel.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// TimeToken selects the shared time base instead of a numbered channel.
const TimeToken = "time"

// TimeLabel is the axis label used for the time pseudo-channel.
const TimeLabel = "Time (seconds)"

// ErrChannelNotFound is returned when a selection refers to a channel that the
// loaded dataset does not have (or when no dataset is loaded at all).
var ErrChannelNotFound = errors.New("channel not found")

// ErrSampleCount is returned by New when channels disagree on their length.
var ErrSampleCount = errors.New("channels have different sample counts")

// Dataset is what a loader hands over: the title, the id→description map and
// the id→samples map, plus the time base.
type Dataset struct {
	Title        string
	Path         string
	Descriptions map[int]string
	Data         map[int][]float64
	Time         []float64
}

// Channel is one numbered series of the dataset.
type Channel struct {
	ID          int
	Description string
	Samples     []float64
}

// Catalog is immutable once built; loading another file builds a new one.
type Catalog struct {
	title    string
	path     string
	time     []float64
	channels map[int]Channel
	ids      []int // ascending
}

// New validates ds and builds a catalog over it. Every channel with data must
// have the same number of samples as the time base, or as the lowest numbered
// channel when there is no time base.
func New(ds Dataset) (*Catalog, error) {
	c := &Catalog{
		title:    ds.Title,
		path:     ds.Path,
		time:     ds.Time,
		channels: make(map[int]Channel, len(ds.Data)),
	}
	for id := range ds.Data {
		c.ids = append(c.ids, id)
	}
	sort.Ints(c.ids)

	n, ref := len(ds.Time), "time base"
	if n == 0 && len(c.ids) > 0 {
		n, ref = len(ds.Data[c.ids[0]]), fmt.Sprintf("channel %d", c.ids[0])
	}
	for _, id := range c.ids {
		samples := ds.Data[id]
		if len(samples) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, %s has %d", ErrSampleCount, id, len(samples), ref, n)
		}
		desc := strings.TrimSpace(ds.Descriptions[id])
		if desc == "" {
			desc = fmt.Sprintf("Channel %d", id)
		}
		c.channels[id] = Channel{ID: id, Description: desc, Samples: samples}
	}
	return c, nil
}

// Title is the dataset's short title (may be empty).
func (c *Catalog) Title() string {
	if c == nil {
		return ""
	}
	return c.title
}

// Path is the file the dataset was loaded from.
func (c *Catalog) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Dir is the directory holding the dataset file; exports go next to it.
func (c *Catalog) Dir() string {
	if c == nil || c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// ChannelCount counts the numbered channels offered for selection.
func (c *Catalog) ChannelCount() int {
	return len(c.Tokens()) - 1
}

// SampleCount is the length of the time base.
func (c *Catalog) SampleCount() int {
	if c == nil {
		return 0
	}
	return len(c.time)
}

// Channel returns the channel with the given id.
func (c *Catalog) Channel(id int) (Channel, bool) {
	if c == nil {
		return Channel{}, false
	}
	ch, ok := c.channels[id]
	return ch, ok
}

// Tokens lists every selectable token: "time" first, then "<id>: <description>"
// in ascending id order. Channels that are themselves a time column are left
// out since the time base is reachable through "time".
func (c *Catalog) Tokens() []string {
	out := []string{TimeToken}
	if c == nil {
		return out
	}
	for _, id := range c.ids {
		ch := c.channels[id]
		if strings.HasPrefix(strings.ToLower(ch.Description), "time") {
			continue
		}
		out = append(out, Token(id, ch.Description))
	}
	return out
}

// Token formats the selection token of a channel.
func Token(id int, description string) string {
	return strconv.Itoa(id) + ": " + description
}

// ParseToken extracts the channel id from a token. isTime is set for the time
// pseudo-channel, in which case id is meaningless.
func ParseToken(token string) (id int, isTime bool, err error) {
	t := strings.TrimSpace(token)
	if t == TimeToken {
		return 0, true, nil
	}
	head := t
	if i := strings.Index(t, ":"); i >= 0 {
		head = t[:i]
	}
	id, err = strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q is not a channel token", ErrChannelNotFound, token)
	}
	return id, false, nil
}

// Resolve returns the samples selected by token.
func (c *Catalog) Resolve(token string) ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: no dataset loaded", ErrChannelNotFound)
	}
	id, isTime, err := ParseToken(token)
	if err != nil {
		return nil, err
	}
	if isTime {
		if len(c.time) == 0 {
			return nil, fmt.Errorf("%w: dataset has no time base", ErrChannelNotFound)
		}
		return c.time, nil
	}
	ch, ok := c.channels[id]
	if !ok || ch.Samples == nil {
		return nil, fmt.Errorf("%w: %q", ErrChannelNotFound, token)
	}
	return ch.Samples, nil
}

// LabelFor turns a token into a human readable axis/legend label.
func LabelFor(token string) string {
	t := strings.TrimSpace(token)
	if t == TimeToken {
		return TimeLabel
	}
	if i := strings.Index(t, ": "); i >= 0 {
		return t[i+2:]
	}
	return t
}

// LabelFor is the method form of the package function, for callers holding a catalog.
func (c *Catalog) LabelFor(token string) string { return LabelFor(token) }
