package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/config"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/render"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/selection"
)

type renderOptions struct {
	x      string
	y      []string
	dual   bool
	title  string
	xLabel string
	yLabel string
	y2Lbl  string
	xLim   string
	yLim   string
	y2Lim  string
	font   string
	size   int
	grid   bool
	legend string
	frame  bool
	anchor string

	dpi         float64
	tight       bool
	transparent bool
	out         string
	name        string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render channels of a dataset to a PNG file",
		Long: `Render plots one or more channels against time (or another channel).

Series are given as -y ID[:COLOR[:STYLE[:LABEL]]], for example
  -y 3 -y 5:r:--:Bus 5 voltage -y 7:#ff8800
Empty fields keep the automatic palette color, line style and label.
Limits are MIN,MAX with either side left blank for automatic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := o.apply(cmd, s, root.env); err != nil {
				return err
			}
			p, err := s.Generate()
			if err != nil {
				return err
			}
			path := o.out
			if path == "" {
				path = s.ExportPath(o.name)
			}
			dpi := o.dpi
			if dpi <= 0 {
				dpi = root.env.DPI
			}
			if err := render.Export(p, path, render.ExportOptions{DPI: dpi, Tight: o.tight, Transparent: o.transparent}); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			set := s.Settings
			fmt.Fprintf(out, "x limits  %s, %s\n", set.XLimits.Min, set.XLimits.Max)
			fmt.Fprintf(out, "y limits  %s, %s\n", set.YLimits.Min, set.YLimits.Max)
			if p.Dual() {
				fmt.Fprintf(out, "y2 limits %s, %s\n", set.Y2Limits.Min, set.Y2Limits.Max)
			}
			fmt.Fprintf(out, "%s %s\n", color.GreenString("saved"), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.x, "x", "x", catalog.TimeToken, "X channel id or \"time\"")
	f.StringArrayVarP(&o.y, "y", "y", nil, "Y series ID[:COLOR[:STYLE[:LABEL]]] (repeatable)")
	f.BoolVar(&o.dual, "dual", false, "Allow a secondary Y axis for small-range series")
	f.StringVar(&o.title, "title", plan.DefaultTitle, "Chart title")
	f.StringVar(&o.xLabel, "xlabel", "", "X axis label (default from the X channel)")
	f.StringVar(&o.yLabel, "ylabel", plan.DefaultYLabel, "Left Y axis label")
	f.StringVar(&o.y2Lbl, "y2label", "", "Right Y axis label (default from its series)")
	f.StringVar(&o.xLim, "xlim", "", "X limits MIN,MAX")
	f.StringVar(&o.yLim, "ylim", "", "Left Y limits MIN,MAX")
	f.StringVar(&o.y2Lim, "y2lim", "", "Right Y limits MIN,MAX")
	f.StringVar(&o.font, "font", "", "Font family (default "+plan.DefaultFontFamily+")")
	f.IntVar(&o.size, "font-size", plan.DefaultFontSize, "Font size")
	f.BoolVar(&o.grid, "grid", true, "Draw grid lines")
	f.StringVar(&o.legend, "legend-loc", "best", "Legend location")
	f.BoolVar(&o.frame, "frame", true, "Draw a frame around the legend")
	f.StringVar(&o.anchor, "anchor", "", "Legend anchor X,Y in axes fractions")
	f.Float64Var(&o.dpi, "dpi", 0, "Export DPI (default from DYNGRAPH_DPI or 150)")
	f.BoolVar(&o.tight, "tight", false, "Trim the padding around the chart")
	f.BoolVar(&o.transparent, "transparent", false, "Transparent background")
	f.StringVarP(&o.out, "out", "o", "", "Output path (default: next to the dataset)")
	f.StringVar(&o.name, "name", "", "Output file name next to the dataset (default: the title)")
	return cmd
}

// apply copies the flags into the session's selections and settings.
func (o *renderOptions) apply(cmd *cobra.Command, s *plan.Session, env config.Env) error {
	xTok, err := tokenFor(s.Catalog, o.x)
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	s.Selections.SetX(xTok)

	if len(o.y) > 0 {
		rows := s.Selections.List()
		for i, spec := range o.y {
			sel, err := parseSeries(s.Catalog, spec)
			if err != nil {
				return fmt.Errorf("y %q: %w", spec, err)
			}
			if i == 0 {
				if err := s.Selections.Update(rows[0].ID, func(cur *selection.Selection) { *cur = sel }); err != nil {
					return err
				}
				continue
			}
			s.Selections.Add(sel)
		}
	}

	set := &s.Settings
	set.Title = o.title
	set.XLabel = o.xLabel
	set.YLabel = o.yLabel
	set.Y2Label = o.y2Lbl
	set.XLimits = parseLimits(o.xLim)
	set.YLimits = parseLimits(o.yLim)
	set.Y2Limits = parseLimits(o.y2Lim)
	switch {
	case cmd.Flags().Changed("font"):
		set.FontFamily = o.font
	case env.Font != "":
		set.FontFamily = env.Font
	}
	set.FontSize = strconv.Itoa(o.size)
	set.Grid = o.grid
	set.DualAxis = o.dual
	set.Legend.Location = o.legend
	set.Legend.FrameOn = o.frame
	ax, ay, _ := strings.Cut(o.anchor, ",")
	set.Legend.AnchorX, set.Legend.AnchorY = ax, ay
	return nil
}

// parseSeries reads ID[:COLOR[:STYLE[:LABEL]]].
func parseSeries(cat *catalog.Catalog, spec string) (selection.Selection, error) {
	parts := strings.SplitN(spec, ":", 4)
	tok, err := tokenFor(cat, parts[0])
	if err != nil {
		return selection.Selection{}, err
	}
	sel := selection.Selection{Channel: tok}
	if len(parts) > 1 {
		sel.Color = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		sel.LineStyle = strings.TrimSpace(parts[2])
	}
	if len(parts) > 3 {
		sel.Label = parts[3]
	}
	return sel, nil
}

// tokenFor maps a channel id or "time" to the catalog token.
func tokenFor(cat *catalog.Catalog, id string) (string, error) {
	id = strings.TrimSpace(id)
	if strings.EqualFold(id, catalog.TimeToken) {
		return catalog.TimeToken, nil
	}
	n, err := strconv.Atoi(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a channel id", catalog.ErrChannelNotFound, id)
	}
	ch, ok := cat.Channel(n)
	if !ok {
		return "", fmt.Errorf("%w: no channel %d", catalog.ErrChannelNotFound, n)
	}
	return catalog.Token(n, ch.Description), nil
}

func parseLimits(s string) axis.LimitFields {
	lo, hi, _ := strings.Cut(s, ",")
	return axis.LimitFields{Min: strings.TrimSpace(lo), Max: strings.TrimSpace(hi)}
}
