package main

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/selection"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

// defaultLineStyle is the select entry meaning "no override".
const defaultLineStyle = "default"

// seriesRow is the widget group editing one Y selection.
type seriesRow struct {
	id        int
	channel   *widget.Select
	color     *widget.SelectEntry
	lineStyle *widget.Select
	label     *widget.Entry
	box       *fyne.Container
}

func newSeriesRow(s *uiState, row selection.Row) *seriesRow {
	r := &seriesRow{id: row.ID}
	update := func(fn func(*selection.Selection)) {
		_ = s.session.Selections.Update(r.id, fn)
	}

	r.channel = widget.NewSelect(s.session.Tokens(), nil)
	r.channel.PlaceHolder = "(select Y)"
	r.channel.Selected = row.Channel
	r.channel.OnChanged = func(v string) { update(func(sel *selection.Selection) { sel.Channel = v }) }

	r.color = widget.NewSelectEntry(style.ColorNames())
	r.color.SetPlaceHolder("auto")
	r.color.SetText(row.Color)
	r.color.OnChanged = func(v string) { update(func(sel *selection.Selection) { sel.Color = v }) }

	r.lineStyle = widget.NewSelect(append([]string{defaultLineStyle}, style.LineStyles()...), nil)
	r.lineStyle.Selected = lineStyleOption(row.LineStyle)
	r.lineStyle.OnChanged = func(v string) {
		if v == defaultLineStyle {
			v = ""
		}
		update(func(sel *selection.Selection) { sel.LineStyle = v })
	}

	r.label = widget.NewEntry()
	r.label.SetPlaceHolder("legend label")
	r.label.SetText(row.Label)
	r.label.OnChanged = func(v string) { update(func(sel *selection.Selection) { sel.Label = v }) }

	remove := widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { removeSeriesRow(s, r.id) })
	r.box = container.NewBorder(nil, nil, nil, remove,
		container.NewVBox(r.channel, container.NewGridWithColumns(3, r.color, r.lineStyle, r.label)))
	return r
}

func lineStyleOption(ls string) string {
	if ls == "" {
		return defaultLineStyle
	}
	return ls
}

// rebuildRows recreates the row widgets from the selection model.
func rebuildRows(s *uiState) {
	s.rows = s.rows[:0]
	objs := make([]fyne.CanvasObject, 0, s.session.Selections.Len())
	for _, row := range s.session.Selections.List() {
		r := newSeriesRow(s, row)
		s.rows = append(s.rows, r)
		objs = append(objs, r.box)
	}
	s.rowsBox.Objects = objs
	s.rowsBox.Refresh()
}

func addSeriesRow(s *uiState) {
	s.session.AddSeries()
	rebuildRows(s)
}

func removeSeriesRow(s *uiState, id int) {
	if err := s.session.RemoveSeries(id); err != nil {
		if errors.Is(err, selection.ErrMinimumSeries) {
			dialog.ShowInformation("Y variables", "At least one Y variable is required.", s.window)
			return
		}
		dialog.ShowError(err, s.window)
		return
	}
	rebuildRows(s)
}
