package render

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

func testPlan(dual bool) *plan.RenderPlan {
	x := []float64{0, 0.5, 1, 1.5, 2}
	p := &plan.RenderPlan{
		Series: []plan.SeriesPlan{
			{X: x, Y: []float64{0, 10, 20, 30, 40}, Color: "b", LineStyle: style.Solid, Label: "1: ANGL", Axis: axis.Left, Index: 0},
			{X: x, Y: []float64{1, 1.1, 0.9, 1, 1}, Color: "g", LineStyle: style.Dashed, Label: "2: VOLT", Axis: axis.Left, Index: 1},
		},
		X:          axis.Range{Min: -0.1, Max: 2.1},
		LeftY:      axis.Range{Min: -2, Max: 42},
		Title:      "Dynamic Simulation Results",
		XLabel:     "Time (seconds)",
		YLabel:     "Value",
		FontFamily: "Roboto",
		FontSize:   10,
		Grid:       true,
	}
	if dual {
		p.Series[1].Axis = axis.Right
		p.RightY = &axis.Range{Min: 0.89, Max: 1.11}
		p.Y2Label = "2: VOLT"
	}
	p.Legends = style.BuildLegends(
		[]style.Entry{{Label: p.Series[0].Label, Color: "b", LineStyle: style.Solid}},
		[]style.Entry{{Label: p.Series[1].Label, Color: "g", LineStyle: style.Dashed}},
		style.Placement{Location: style.Best, FrameOn: true},
	)
	return p
}

func TestChartSecondaryAxis(t *testing.T) {
	ch, err := Renderer{}.Chart(testPlan(true), 800, 400)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	secondary := 0
	for _, s := range ch.Series {
		if s.GetYAxis() == chart.YAxisSecondary {
			secondary++
		}
	}
	if secondary != 1 {
		t.Fatalf("expected one series on the secondary axis, got %d", secondary)
	}
	if ch.YAxisSecondary.Range == nil || ch.YAxisSecondary.Name != "2: VOLT" {
		t.Fatalf("secondary axis not configured: %+v", ch.YAxisSecondary)
	}
}

func TestChartSingleAxisHidesSecondary(t *testing.T) {
	ch, err := Renderer{}.Chart(testPlan(false), 800, 400)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !ch.YAxisSecondary.Style.Hidden {
		t.Fatalf("secondary axis should be hidden without right series")
	}
}

func TestChartGridToggle(t *testing.T) {
	p := testPlan(false)
	p.Grid = false
	ch, err := Renderer{}.Chart(p, 800, 400)
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !ch.XAxis.GridMajorStyle.Hidden || !ch.YAxis.GridMajorStyle.Hidden {
		t.Fatalf("grid should be hidden")
	}
}

func TestChartRejectsNilAndBrokenPlans(t *testing.T) {
	if _, err := (Renderer{}).Chart(nil, 100, 100); !errors.Is(err, ErrNilPlan) {
		t.Fatalf("expected ErrNilPlan, got %v", err)
	}
	p := testPlan(false)
	p.Series[0].Y = p.Series[0].Y[:2]
	if _, err := (Renderer{}).Chart(p, 100, 100); err == nil {
		t.Fatalf("expected length mismatch error")
	}
}

func TestAxisRange(t *testing.T) {
	r := axisRange(axis.Range{Min: 5, Max: 1})
	if r.Min != 1 || r.Max != 5 || !r.Descending {
		t.Fatalf("inverted limits should give a descending axis, got %+v", r)
	}
	r = axisRange(axis.Range{Min: 3, Max: 3})
	if r.Min != 2 || r.Max != 4 {
		t.Fatalf("zero width range should widen by one unit, got %+v", r)
	}
}

func TestTicksAlwaysTwo(t *testing.T) {
	got := ticks(&chart.ContinuousRange{Min: 1.8, Max: 6.2})
	if len(got) < 2 {
		t.Fatalf("expected ticks, got %+v", got)
	}
	for _, tk := range got {
		if tk.Value < 1.8 || tk.Value > 6.2 {
			t.Fatalf("tick %v outside range", tk.Value)
		}
	}
}

func TestDrawingColorFallsBackToPalette(t *testing.T) {
	c := drawingColor("not-a-color", 2)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("expected palette red for index 2, got %+v", c)
	}
}

func TestImageSize(t *testing.T) {
	img, err := Image(testPlan(true), 640, 320)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 320 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestImageAllClipped(t *testing.T) {
	p := testPlan(false)
	p.LeftY = axis.Range{Min: 100, Max: 200}
	if _, err := Image(p, 640, 320); err != nil {
		t.Fatalf("fully clipped plot should still render axes: %v", err)
	}
}

func TestImageWithGaps(t *testing.T) {
	p := testPlan(false)
	p.Series[0].Y[2] = math.NaN()
	if _, err := Image(p, 640, 320); err != nil {
		t.Fatalf("image with NaN samples: %v", err)
	}
}

func TestExportWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "Bus_5_V_Hz_.png")
	if err := Export(testPlan(true), path, ExportOptions{DPI: 50, Transparent: true}); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 500 || b.Dy() != 250 {
		t.Fatalf("expected 10x5in at 50dpi, got %v", b)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Fatalf("transparent export should have a clear corner, alpha=%d", a)
	}
}

func TestExportFailureIsErrExport(t *testing.T) {
	dir := t.TempDir()
	err := Export(testPlan(false), dir, ExportOptions{DPI: 30})
	if !errors.Is(err, ErrExport) {
		t.Fatalf("expected ErrExport writing over a directory, got %v", err)
	}
}
