package style

import (
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
)

// Location is a named legend position.
type Location string

const (
	Best        Location = "best"
	UpperRight  Location = "upper right"
	UpperLeft   Location = "upper left"
	LowerLeft   Location = "lower left"
	LowerRight  Location = "lower right"
	RightSide   Location = "right"
	CenterLeft  Location = "center left"
	CenterRight Location = "center right"
	LowerCenter Location = "lower center"
	UpperCenter Location = "upper center"
	Center      Location = "center"
)

// Locations is the fixed set of legend positions, in menu order.
var Locations = []Location{
	Best, UpperRight, UpperLeft, LowerLeft, LowerRight, RightSide,
	CenterLeft, CenterRight, LowerCenter, UpperCenter, Center,
}

// LocationNames returns Locations as strings for select widgets and flags.
func LocationNames() []string {
	out := make([]string, len(Locations))
	for i, l := range Locations {
		out[i] = string(l)
	}
	return out
}

// ParseLocation matches a location name case-insensitively; blank or unknown
// names give Best and false.
func ParseLocation(s string) (Location, bool) {
	v := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	for _, l := range Locations {
		if string(l) == v {
			return l, true
		}
	}
	return Best, false
}

// Point is a legend anchor in axes fractions (0,0 bottom-left, 1,1 top-right).
type Point struct {
	X, Y float64
}

// LegendFields are the editable legend settings.
type LegendFields struct {
	Location string
	FrameOn  bool
	AnchorX  string
	AnchorY  string
}

// Placement is the resolved legend placement shared by every legend of a plot.
type Placement struct {
	Location Location
	FrameOn  bool
	Anchor   *Point
}

// ResolveLegend parses the legend fields. The anchor is only set when both
// coordinates parse; otherwise placement silently falls back to Location.
func ResolveLegend(f LegendFields) Placement {
	loc, _ := ParseLocation(f.Location)
	p := Placement{Location: loc, FrameOn: f.FrameOn}
	x, okX := axis.ParseFloatField(f.AnchorX)
	y, okY := axis.ParseFloatField(f.AnchorY)
	if okX && okY {
		p.Anchor = &Point{X: x, Y: y}
	}
	return p
}

// Entry is one legend line.
type Entry struct {
	Label     string
	Color     string
	LineStyle string
}

// Legend is the legend of one axis.
type Legend struct {
	Axis    axis.Side
	Entries []Entry
	Placement
}

// BuildLegends produces one legend per axis that has at least one labeled
// series, left first. Unlabeled series are left out of the entries.
func BuildLegends(left, right []Entry, p Placement) []Legend {
	var out []Legend
	if l := labeled(left); len(l) > 0 {
		out = append(out, Legend{Axis: axis.Left, Entries: l, Placement: p})
	}
	if r := labeled(right); len(r) > 0 {
		out = append(out, Legend{Axis: axis.Right, Entries: r, Placement: p})
	}
	return out
}

func labeled(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if strings.TrimSpace(e.Label) != "" {
			out = append(out, e)
		}
	}
	return out
}
