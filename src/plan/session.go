package plan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/loader"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/selection"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

// Session is the explicit state of one interactive grapher: the loaded
// catalog, the series selections and the display settings. It is used from a
// single goroutine and holds no reference to any widget.
type Session struct {
	Catalog    *catalog.Catalog
	Selections *selection.Model
	Settings   Settings
}

// NewSession returns an empty session with default settings and one unset Y row.
func NewSession() *Session {
	return &Session{
		Selections: selection.New(),
		Settings:   DefaultSettings(),
	}
}

// Load reads path and replaces the catalog wholesale. On failure the session
// is left exactly as it was. On success channel choices are reset to the new
// dataset and limit fields are cleared so the next plot recomputes them.
func (s *Session) Load(ctx context.Context, l loader.Loader, path string) error {
	ds, err := l.Load(ctx, path)
	if err != nil {
		return err
	}
	if ds.Path == "" {
		ds.Path = path
	}
	cat, err := catalog.New(ds)
	if err != nil {
		return &loader.IOError{Path: path, Op: "parse", Err: err}
	}
	s.Catalog = cat
	s.Selections.ApplyDefaults(cat.Tokens())
	s.Settings.ClearLimits()
	logging.Infof("session: dataset %q ready, %d channels", cat.Title(), cat.ChannelCount())
	return nil
}

// Tokens lists the selectable channels of the loaded dataset.
func (s *Session) Tokens() []string {
	if s.Catalog == nil {
		return nil
	}
	return s.Catalog.Tokens()
}

// AddSeries appends a Y row preselecting the next available channel.
func (s *Session) AddSeries() int {
	token := selection.DefaultTokenFor(s.Tokens(), s.Selections.Len())
	return s.Selections.Add(selection.Selection{Channel: token})
}

// RemoveSeries removes a Y row; the last row is kept and ErrMinimumSeries returned.
func (s *Session) RemoveSeries(id int) error {
	return s.Selections.Remove(id)
}

// ResetAxes clears every limit field and generates again, so all bounds are
// recomputed from the data.
func (s *Session) ResetAxes() (*RenderPlan, error) {
	s.Settings.ClearLimits()
	return s.Generate()
}

type resolvedRow struct {
	row     selection.Row
	samples []float64
}

// Generate resolves the current selections and settings into a RenderPlan.
// Every error is returned before any limit field is touched, so a failed
// generation leaves the session unchanged.
func (s *Session) Generate() (*RenderPlan, error) {
	defer logging.TimeTrack(time.Now(), "generate plot")
	if s.Catalog == nil {
		return nil, fmt.Errorf("%w: %w", catalog.ErrChannelNotFound, ErrNoDataset)
	}
	xSel := s.Selections.X()
	if xSel.Empty() {
		return nil, ErrNoXSelection
	}
	rows := s.Selections.NonEmpty()
	if len(rows) == 0 {
		return nil, ErrNoYSelection
	}
	xData, err := s.Catalog.Resolve(xSel.Channel)
	if err != nil {
		return nil, fmt.Errorf("data not available for X variable: %w", err)
	}
	resolved := make([]resolvedRow, 0, len(rows))
	for _, r := range rows {
		ys, err := s.Catalog.Resolve(r.Channel)
		if err != nil {
			return nil, fmt.Errorf("data not available for Y variable: %w", err)
		}
		resolved = append(resolved, resolvedRow{row: r, samples: ys})
	}
	fontSize, err := s.Settings.ParseFontSize()
	if err != nil {
		return nil, err
	}

	series := make([]axis.Series, len(resolved))
	for i, r := range resolved {
		series[i] = axis.Series{Label: catalog.LabelFor(r.row.Channel), Samples: r.samples}
	}
	dual := s.Settings.DualAxis && axis.DualAllowed(s.Catalog.ChannelCount(), len(series))
	if s.Settings.DualAxis && !dual {
		logging.Debugf("dual axis requested but not applicable: channels=%d series=%d", s.Catalog.ChannelCount(), len(series))
	}
	sides := axis.Partition(series, dual)

	p := &RenderPlan{
		Title:      s.Settings.Title,
		XLabel:     firstNonBlank(s.Settings.XLabel, catalog.LabelFor(xSel.Channel)),
		YLabel:     s.Settings.YLabel,
		FontFamily: firstNonBlank(s.Settings.FontFamily, DefaultFontFamily),
		FontSize:   fontSize,
		Grid:       s.Settings.Grid,
	}

	var leftData, rightData [][]float64
	var leftEntries, rightEntries []style.Entry
	var rightLabels []string
	for i, r := range resolved {
		side := sides[i]
		sp := SeriesPlan{
			X:         xData,
			Y:         r.samples,
			Color:     style.ResolveColor(r.row.Color, r.row.Index),
			LineStyle: style.ResolveLineStyle(r.row.LineStyle, side),
			Label:     style.ResolveLabel(r.row.Label, series[i].Label),
			Axis:      side,
			Index:     r.row.Index,
		}
		p.Series = append(p.Series, sp)
		entry := style.Entry{Label: sp.Label, Color: sp.Color, LineStyle: sp.LineStyle}
		if side == axis.Right {
			rightData = append(rightData, r.samples)
			rightEntries = append(rightEntries, entry)
			rightLabels = append(rightLabels, sp.Label)
			continue
		}
		leftData = append(leftData, r.samples)
		leftEntries = append(leftEntries, entry)
	}

	p.X = axis.ResolveLimits(&s.Settings.XLimits, axis.DefaultBounds(xData))
	p.LeftY = axis.ResolveLimits(&s.Settings.YLimits, axis.DefaultBounds(leftData...))
	if len(rightData) > 0 {
		r := axis.ResolveLimits(&s.Settings.Y2Limits, axis.DefaultBounds(rightData...))
		p.RightY = &r
		p.Y2Label = firstNonBlank(s.Settings.Y2Label, strings.Join(rightLabels, ", "))
		logging.Debugf("dual axis: %d left, %d right series", len(leftData), len(rightData))
	}
	p.Legends = style.BuildLegends(leftEntries, rightEntries, style.ResolveLegend(s.Settings.Legend))
	return p, nil
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
