// Package render draws a RenderPlan with go-chart and exports it as PNG.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/uihelpers"
)

// ErrNilPlan is returned when there is nothing to draw.
var ErrNilPlan = errors.New("render: nil plan")

const (
	tickCount      = 6
	lineWidth      = 1.5
	legendSamples  = 400
	outsideLegendW = 180
)

var (
	gridColor = drawing.Color{R: 210, G: 210, B: 210, A: 255}
	padNormal = chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 16}
	padTight  = chart.Box{Top: 6, Left: 6, Right: 6, Bottom: 6}
)

// Renderer turns plans into go-chart charts. The zero value renders for the
// screen at go-chart's default DPI on an opaque white background.
type Renderer struct {
	DPI         float64
	Tight       bool
	Transparent bool
}

// Chart builds the go-chart description of p at width x height pixels.
func (rd Renderer) Chart(p *plan.RenderPlan, width, height int) (*chart.Chart, error) {
	if p == nil {
		return nil, ErrNilPlan
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	font, family, err := LoadFont(p.FontFamily)
	if err != nil {
		return nil, err
	}
	size := p.FontSize
	if size <= 0 {
		size = plan.DefaultFontSize
	}
	logging.Debugf("render: %d series, font %s %.0fpt, %dx%d", len(p.Series), family, size, width, height)

	xr := axisRange(p.X)
	left := axisRange(p.LeftY)
	var right *chart.ContinuousRange
	if p.RightY != nil {
		right = axisRange(*p.RightY)
	}

	var series []chart.Series
	var pts [][2]float64
	for _, s := range p.Series {
		yr := left
		if s.Axis == axis.Right {
			yr = right
		}
		st := seriesStyle(s)
		for _, seg := range clipPolylines(s.X, s.Y, rect{xmin: xr.Min, xmax: xr.Max, ymin: yr.Min, ymax: yr.Max}) {
			segStyle := st
			if len(seg.xs) == 1 {
				segStyle.DotWidth = 2
				segStyle.DotColor = st.StrokeColor
			}
			cs := chart.ContinuousSeries{Name: s.Label, Style: segStyle, XValues: seg.xs, YValues: seg.ys}
			if s.Axis == axis.Right {
				cs.YAxis = chart.YAxisSecondary
			}
			series = append(series, cs)
		}
		pts = append(pts, canvasFractions(s.X, s.Y, xr, yr)...)
	}
	if len(series) == 0 {
		// go-chart needs one visible series to draw the axes
		series = append(series, chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: lineWidth},
			XValues: []float64{xr.Min, xr.Max},
			YValues: []float64{left.Min, left.Max},
		})
	}

	ch := &chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: size * 1.2},
		Width:      width,
		Height:     height,
		Font:       font,
		Background: chart.Style{Padding: rd.padding(p)},
		XAxis: chart.XAxis{
			Name:           p.XLabel,
			NameStyle:      chart.Style{FontSize: size},
			Style:          chart.Style{FontSize: size * 0.9},
			Range:          xr,
			Ticks:          ticks(xr),
			GridMajorStyle: gridStyle(p.Grid),
			GridMinorStyle: gridStyle(p.Grid),
		},
		YAxis: chart.YAxis{
			Name:           p.YLabel,
			NameStyle:      chart.Style{FontSize: size},
			Style:          chart.Style{FontSize: size * 0.9},
			Range:          left,
			Ticks:          ticks(left),
			GridMajorStyle: gridStyle(p.Grid),
			GridMinorStyle: gridStyle(p.Grid),
		},
		Series: series,
	}
	if right != nil {
		ch.YAxisSecondary = chart.YAxis{
			Name:      p.Y2Label,
			NameStyle: chart.Style{FontSize: size},
			Style:     chart.Style{FontSize: size * 0.9},
			Range:     right,
			Ticks:     ticks(right),
		}
	} else {
		ch.YAxisSecondary = chart.YAxis{Style: chart.Style{Hidden: true}}
	}
	if rd.DPI > 0 {
		ch.DPI = rd.DPI
	}
	if rd.Transparent {
		ch.Background.FillColor = drawing.ColorTransparent
		ch.Background.StrokeColor = drawing.ColorTransparent
		ch.Canvas.FillColor = drawing.ColorTransparent
		ch.Canvas.StrokeColor = drawing.ColorTransparent
	}
	ch.Elements = []chart.Renderable{legendRenderable(p.Legends, pts, font, size)}
	return ch, nil
}

// WritePNG renders p as PNG into w.
func (rd Renderer) WritePNG(w io.Writer, p *plan.RenderPlan, width, height int) error {
	ch, err := rd.Chart(p, width, height)
	if err != nil {
		return err
	}
	return rd.writeChart(w, ch)
}

func (rd Renderer) writeChart(w io.Writer, ch *chart.Chart) error {
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Image renders p into an in-memory image.
func (rd Renderer) Image(p *plan.RenderPlan, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	if err := rd.WritePNG(&buf, p, width, height); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// Image renders p for the screen.
func Image(p *plan.RenderPlan, width, height int) (image.Image, error) {
	return Renderer{}.Image(p, width, height)
}

// WritePNG renders p for the screen as PNG into w.
func WritePNG(w io.Writer, p *plan.RenderPlan, width, height int) error {
	return Renderer{}.WritePNG(w, p, width, height)
}

func (rd Renderer) padding(p *plan.RenderPlan) chart.Box {
	pad := padNormal
	if rd.Tight {
		pad = padTight
	}
	// an anchor beyond the right edge puts the legend outside the axes
	for _, lg := range p.Legends {
		if lg.Anchor != nil && lg.Anchor.X >= 1 {
			pad.Right += outsideLegendW
			break
		}
	}
	return pad
}

// axisRange converts a resolved range. Inverted limits give a descending axis
// and a zero-width range is widened so go-chart can scale it.
func axisRange(r axis.Range) *chart.ContinuousRange {
	lo, hi := r.Min, r.Max
	desc := false
	if lo > hi {
		lo, hi = hi, lo
		desc = true
	}
	if lo == hi {
		lo, hi = lo-axis.UnitPadding, hi+axis.UnitPadding
	}
	return &chart.ContinuousRange{Min: lo, Max: hi, Descending: desc}
}

func ticks(r *chart.ContinuousRange) []chart.Tick {
	vals := uihelpers.TicksWithin(r.Min, r.Max, tickCount)
	if len(vals) < 2 {
		vals = []float64{r.Min, r.Max}
	}
	out := make([]chart.Tick, 0, len(vals))
	for _, v := range vals {
		out = append(out, chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)})
	}
	return out
}

func gridStyle(on bool) chart.Style {
	if !on {
		return chart.Style{Hidden: true}
	}
	return chart.Style{StrokeColor: gridColor, StrokeWidth: 0.8}
}

func seriesStyle(s plan.SeriesPlan) chart.Style {
	return chart.Style{
		StrokeColor:     drawingColor(s.Color, s.Index),
		StrokeWidth:     lineWidth,
		StrokeDashArray: style.DashPattern(s.LineStyle),
	}
}

// drawingColor parses a resolved color; an unreadable one falls back to the
// palette color of the series position.
func drawingColor(c string, index int) drawing.Color {
	rgba, err := style.ParseColor(c)
	if err != nil {
		fallback := style.ResolveColor("", index)
		logging.Warnf("invalid color %q, using %q", c, fallback)
		rgba, _ = style.ParseColor(fallback)
	}
	return drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}

// canvasFractions samples a series as fractions of the visible area, for
// legend placement.
func canvasFractions(xs, ys []float64, xr, yr *chart.ContinuousRange) [][2]float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	step := 1
	if n > legendSamples {
		step = n / legendSamples
	}
	var out [][2]float64
	for i := 0; i < n; i += step {
		if !finite(xs[i], ys[i]) {
			continue
		}
		fx := (xs[i] - xr.Min) / (xr.Max - xr.Min)
		fy := (ys[i] - yr.Min) / (yr.Max - yr.Min)
		if xr.Descending {
			fx = 1 - fx
		}
		if yr.Descending {
			fy = 1 - fy
		}
		if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
			continue
		}
		out = append(out, [2]float64{fx, fy})
	}
	return out
}
