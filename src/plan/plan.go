// Package plan turns a session's selections and display settings into a
// RenderPlan: the resolved, side-effect free description of one chart.
package plan

import (
	"fmt"
	"math"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

// SeriesPlan is one line to draw.
type SeriesPlan struct {
	X         []float64
	Y         []float64
	Color     string
	LineStyle string
	Label     string
	Axis      axis.Side
	// Index is the position of the series in the full Y selection list.
	Index int
}

// RenderPlan is everything a renderer needs. RightY is nil for single-axis plots.
type RenderPlan struct {
	Series []SeriesPlan

	X      axis.Range
	LeftY  axis.Range
	RightY *axis.Range

	Title   string
	XLabel  string
	YLabel  string
	Y2Label string

	FontFamily string
	FontSize   float64
	Grid       bool

	Legends []style.Legend
}

// Dual reports whether the plan uses the right axis.
func (p *RenderPlan) Dual() bool { return p.RightY != nil }

// OnAxis returns the series of one side, in draw order.
func (p *RenderPlan) OnAxis(side axis.Side) []SeriesPlan {
	var out []SeriesPlan
	for _, s := range p.Series {
		if s.Axis == side {
			out = append(out, s)
		}
	}
	return out
}

// Validate checks the structural invariants renderers rely on.
func (p *RenderPlan) Validate() error {
	if len(p.Series) == 0 {
		return fmt.Errorf("plan has no series")
	}
	if !finiteRange(p.X) || !finiteRange(p.LeftY) || (p.RightY != nil && !finiteRange(*p.RightY)) {
		return fmt.Errorf("plan has a non-finite axis range")
	}
	for i, s := range p.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %d (%s): %d x values vs %d y values", i, s.Label, len(s.X), len(s.Y))
		}
		if s.Axis == axis.Right && p.RightY == nil {
			return fmt.Errorf("series %d (%s) is on the right axis but the plan has none", i, s.Label)
		}
	}
	return nil
}

func finiteRange(r axis.Range) bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) && !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0)
}
