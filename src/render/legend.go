package render

import (
	"image"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

const (
	legendMargin  = 8
	legendPadding = 6
	legendSwatch  = 24
	legendGap     = 6
	legendSpacing = 4
)

var (
	legendFrameFill   = drawing.Color{R: 255, G: 255, B: 255, A: 230}
	legendFrameStroke = drawing.Color{R: 160, G: 160, B: 160, A: 255}
)

// bestOrder is the order in which "best" tries candidate locations; ties keep
// the earlier one.
var bestOrder = []style.Location{
	style.UpperRight, style.UpperLeft, style.LowerLeft, style.LowerRight,
	style.RightSide, style.CenterLeft, style.CenterRight,
	style.LowerCenter, style.UpperCenter, style.Center,
}

// legendRenderable draws the per-axis legends stacked in one block, left axis
// first. pts are data points in canvas fractions, used by "best".
func legendRenderable(legends []style.Legend, pts [][2]float64, font *truetype.Font, size float64) chart.Renderable {
	return func(r chart.Renderer, canvas chart.Box, defaults chart.Style) {
		if len(legends) == 0 {
			return
		}
		if font == nil {
			font = defaults.Font
		}
		r.SetFont(font)
		r.SetFontSize(size)

		boxes := make([]image.Point, len(legends))
		lineH := make([]int, len(legends))
		blockW, blockH := 0, 0
		for i, lg := range legends {
			w, lh := 0, 0
			for _, e := range lg.Entries {
				tb := r.MeasureText(e.Label)
				if tb.Width() > w {
					w = tb.Width()
				}
				if tb.Height() > lh {
					lh = tb.Height()
				}
			}
			lh += legendSpacing
			lineH[i] = lh
			boxes[i] = image.Point{
				X: 2*legendPadding + legendSwatch + legendGap + w,
				Y: 2*legendPadding + lh*len(lg.Entries),
			}
			if boxes[i].X > blockW {
				blockW = boxes[i].X
			}
			blockH += boxes[i].Y
			if i > 0 {
				blockH += legendSpacing
			}
		}

		p := legends[0].Placement
		loc := resolveLocation(p.Location, p.Anchor, canvas, blockW, blockH, toPixels(pts, canvas))
		block := placeLegend(loc, p.Anchor, canvas, blockW, blockH, nil)
		top := block.Top
		for i, lg := range legends {
			left := block.Left
			if alignsRight(loc) {
				left = block.Right - boxes[i].X
			}
			box := chart.Box{Top: top, Left: left, Right: left + boxes[i].X, Bottom: top + boxes[i].Y}
			drawLegend(r, box, lg, lineH[i], p.FrameOn)
			top = box.Bottom + legendSpacing
		}
	}
}

func drawLegend(r chart.Renderer, box chart.Box, lg style.Legend, lineH int, frame bool) {
	if frame {
		r.SetStrokeDashArray(nil)
		r.SetFillColor(legendFrameFill)
		r.SetStrokeColor(legendFrameStroke)
		r.SetStrokeWidth(1)
		r.MoveTo(box.Left, box.Top)
		r.LineTo(box.Right, box.Top)
		r.LineTo(box.Right, box.Bottom)
		r.LineTo(box.Left, box.Bottom)
		r.LineTo(box.Left, box.Top)
		r.Close()
		r.FillStroke()
	}
	y := box.Top + legendPadding
	for _, e := range lg.Entries {
		mid := y + lineH/2
		r.SetStrokeColor(drawingColor(e.Color, 0))
		r.SetStrokeWidth(2)
		r.SetStrokeDashArray(style.DashPattern(e.LineStyle))
		r.MoveTo(box.Left+legendPadding, mid)
		r.LineTo(box.Left+legendPadding+legendSwatch, mid)
		r.Stroke()
		r.SetStrokeDashArray(nil)

		tb := r.MeasureText(e.Label)
		r.SetFontColor(drawing.ColorBlack)
		r.Text(e.Label, box.Left+legendPadding+legendSwatch+legendGap, mid+tb.Height()/2)
		y += lineH
	}
}

// placeLegend returns the box of a w x h legend block inside canvas. With an
// anchor, the corner named by loc sits on the anchor point (axes fractions,
// origin bottom-left); "best" anchors by its upper-left corner.
func placeLegend(loc style.Location, anchor *style.Point, canvas chart.Box, w, h int, pts []image.Point) chart.Box {
	loc = resolveLocation(loc, anchor, canvas, w, h, pts)
	if anchor != nil {
		ax := canvas.Left + int(anchor.X*float64(canvas.Width()))
		ay := canvas.Bottom - int(anchor.Y*float64(canvas.Height()))
		left, top := ax, ay
		switch horizontal(loc) {
		case 0:
			left = ax - w/2
		case 1:
			left = ax - w
		}
		switch vertical(loc) {
		case 0:
			top = ay - h/2
		case 1:
			top = ay - h
		}
		return chart.Box{Top: top, Left: left, Right: left + w, Bottom: top + h}
	}
	var left, top int
	switch horizontal(loc) {
	case -1:
		left = canvas.Left + legendMargin
	case 0:
		left = canvas.Left + (canvas.Width()-w)/2
	default:
		left = canvas.Right - legendMargin - w
	}
	switch vertical(loc) {
	case -1:
		top = canvas.Top + legendMargin
	case 0:
		top = canvas.Top + (canvas.Height()-h)/2
	default:
		top = canvas.Bottom - legendMargin - h
	}
	return chart.Box{Top: top, Left: left, Right: left + w, Bottom: top + h}
}

// resolveLocation replaces "best" with a concrete location.
func resolveLocation(loc style.Location, anchor *style.Point, canvas chart.Box, w, h int, pts []image.Point) style.Location {
	if loc != style.Best {
		return loc
	}
	if anchor != nil {
		return style.UpperLeft
	}
	return bestLocation(canvas, w, h, pts)
}

func bestLocation(canvas chart.Box, w, h int, pts []image.Point) style.Location {
	best, bestCount := style.UpperRight, -1
	for _, loc := range bestOrder {
		b := placeLegend(loc, nil, canvas, w, h, nil)
		n := 0
		for _, p := range pts {
			if p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom {
				n++
			}
		}
		if bestCount < 0 || n < bestCount {
			best, bestCount = loc, n
		}
		if n == 0 {
			break
		}
	}
	return best
}

// horizontal is -1 for left, 0 for center and 1 for right aligned locations.
func horizontal(loc style.Location) int {
	switch loc {
	case style.UpperLeft, style.LowerLeft, style.CenterLeft:
		return -1
	case style.LowerCenter, style.UpperCenter, style.Center:
		return 0
	}
	return 1
}

// vertical is -1 for top, 0 for center and 1 for bottom aligned locations.
func vertical(loc style.Location) int {
	switch loc {
	case style.UpperRight, style.UpperLeft, style.UpperCenter, style.Best:
		return -1
	case style.LowerLeft, style.LowerRight, style.LowerCenter:
		return 1
	}
	return 0
}

func alignsRight(loc style.Location) bool { return horizontal(loc) == 1 }

func toPixels(pts [][2]float64, canvas chart.Box) []image.Point {
	out := make([]image.Point, 0, len(pts))
	for _, p := range pts {
		out = append(out, image.Point{
			X: canvas.Left + int(p[0]*float64(canvas.Width())),
			Y: canvas.Bottom - int(p[1]*float64(canvas.Height())),
		})
	}
	return out
}
