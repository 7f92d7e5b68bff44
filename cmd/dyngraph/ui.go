package main

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/config"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/loader"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/render"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/uihelpers"
)

const (
	openHint     = "Open a channel table (File > Open…) to start"
	generateHint = "Choose channels and press Generate"
)

type uiState struct {
	app    fyne.App
	window fyne.Window
	env    config.Env

	session  *plan.Session
	loader   loader.Loader
	filePath string
	lastPlan *plan.RenderPlan

	// widgets
	fileLabel *widget.Label
	chartImg  *canvas.Image
	xSelect   *widget.Select
	rowsBox   *fyne.Container
	rows      []*seriesRow

	title, xLabel, yLabel, y2Label       *widget.Entry
	xMin, xMax, yMin, yMax, y2Min, y2Max *widget.Entry
	fontSelect                           *widget.Select
	fontSize                             *widget.Entry
	gridChk, dualChk, frameChk           *widget.Check
	legendSelect                         *widget.Select
	anchorX, anchorY                     *widget.Entry

	filename                 *widget.Entry
	dpiEntry                 *widget.Entry
	tightChk, transparentChk *widget.Check
}

func newUIState(a fyne.App, w fyne.Window, env config.Env) *uiState {
	s := &uiState{
		app:     a,
		window:  w,
		env:     env,
		session: plan.NewSession(),
		loader:  loader.Default(),
	}
	if env.Font != "" {
		s.session.Settings.FontFamily = env.Font
	}
	set := s.session.Settings

	s.fileLabel = widget.NewLabel("No dataset loaded")
	cw, ch := uihelpers.ComputeChartDimensions(0)
	s.chartImg = canvas.NewImageFromImage(render.Placeholder(cw, ch, openHint))
	s.chartImg.FillMode = canvas.ImageFillContain
	s.chartImg.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))

	s.xSelect = widget.NewSelect(nil, func(v string) { s.session.Selections.SetX(v) })
	s.xSelect.PlaceHolder = "(select X)"
	s.rowsBox = container.NewVBox()

	s.title = entryWithText(set.Title)
	s.xLabel = entryWithPlaceholder(set.XLabel, "from X channel")
	s.yLabel = entryWithText(set.YLabel)
	s.y2Label = entryWithPlaceholder(set.Y2Label, "from right series")
	s.xMin, s.xMax = limitEntry("min"), limitEntry("max")
	s.yMin, s.yMax = limitEntry("min"), limitEntry("max")
	s.y2Min, s.y2Max = limitEntry("min"), limitEntry("max")

	s.fontSelect = widget.NewSelect(render.FontFamilies(), nil)
	s.fontSelect.Selected = set.FontFamily
	s.fontSize = entryWithText(set.FontSize)
	s.gridChk = widget.NewCheck("Grid", nil)
	s.gridChk.Checked = set.Grid
	s.dualChk = widget.NewCheck("Dual Y axis", nil)
	s.dualChk.Checked = set.DualAxis
	s.frameChk = widget.NewCheck("Legend frame", nil)
	s.frameChk.Checked = set.Legend.FrameOn
	s.legendSelect = widget.NewSelect(style.LocationNames(), nil)
	s.legendSelect.Selected = set.Legend.Location
	s.anchorX = entryWithPlaceholder("", "anchor x")
	s.anchorY = entryWithPlaceholder("", "anchor y")

	s.filename = entryWithPlaceholder("", "defaults to the title")
	dpi := env.DPI
	if dpi <= 0 {
		dpi = render.DefaultDPI
	}
	s.dpiEntry = entryWithText(strconv.FormatFloat(dpi, 'f', -1, 64))
	s.tightChk = widget.NewCheck("Tight", nil)
	s.transparentChk = widget.NewCheck("Transparent", nil)
	rebuildRows(s)
	return s
}

func entryWithText(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}

func entryWithPlaceholder(text, placeholder string) *widget.Entry {
	e := entryWithText(text)
	e.SetPlaceHolder(placeholder)
	return e
}

func limitEntry(placeholder string) *widget.Entry { return entryWithPlaceholder("", placeholder) }

func buildContent(s *uiState) fyne.CanvasObject {
	openBtn := widget.NewButton("Open…", func() { openFileDialog(s) })
	addBtn := widget.NewButton("Add series", func() { addSeriesRow(s) })
	generateBtn := widget.NewButton("Generate", func() { generatePlot(s) })
	generateBtn.Importance = widget.HighImportance
	resetBtn := widget.NewButton("Reset Axes", func() { resetAxes(s) })
	exportBtn := widget.NewButton("Export PNG", func() { exportPlot(s) })

	pair := func(a, b fyne.CanvasObject) fyne.CanvasObject { return container.NewGridWithColumns(2, a, b) }
	form := widget.NewForm(
		widget.NewFormItem("Title", s.title),
		widget.NewFormItem("X label", s.xLabel),
		widget.NewFormItem("Y label", s.yLabel),
		widget.NewFormItem("Y2 label", s.y2Label),
		widget.NewFormItem("X limits", pair(s.xMin, s.xMax)),
		widget.NewFormItem("Y limits", pair(s.yMin, s.yMax)),
		widget.NewFormItem("Y2 limits", pair(s.y2Min, s.y2Max)),
		widget.NewFormItem("Font", pair(s.fontSelect, s.fontSize)),
		widget.NewFormItem("Legend", s.legendSelect),
		widget.NewFormItem("Anchor", pair(s.anchorX, s.anchorY)),
	)
	exportForm := widget.NewForm(
		widget.NewFormItem("Filename", s.filename),
		widget.NewFormItem("DPI", s.dpiEntry),
	)

	controls := container.NewVBox(
		container.NewBorder(nil, nil, nil, openBtn, s.fileLabel),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("X variable", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.xSelect,
		widget.NewLabelWithStyle("Y variables", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.rowsBox,
		addBtn,
		widget.NewSeparator(),
		form,
		container.NewHBox(s.gridChk, s.dualChk, s.frameChk),
		container.NewGridWithColumns(2, generateBtn, resetBtn),
		widget.NewSeparator(),
		exportForm,
		container.NewHBox(s.tightChk, s.transparentChk, exportBtn),
	)
	split := container.NewHSplit(container.NewVScroll(controls), container.NewScroll(s.chartImg))
	split.Offset = 0.36
	return split
}

// collectSettings copies the widget values into the session.
func collectSettings(s *uiState) {
	set := &s.session.Settings
	set.Title = s.title.Text
	set.XLabel = s.xLabel.Text
	set.YLabel = s.yLabel.Text
	set.Y2Label = s.y2Label.Text
	set.XLimits = axis.LimitFields{Min: s.xMin.Text, Max: s.xMax.Text}
	set.YLimits = axis.LimitFields{Min: s.yMin.Text, Max: s.yMax.Text}
	set.Y2Limits = axis.LimitFields{Min: s.y2Min.Text, Max: s.y2Max.Text}
	set.FontFamily = s.fontSelect.Selected
	set.FontSize = s.fontSize.Text
	set.Grid = s.gridChk.Checked
	set.DualAxis = s.dualChk.Checked
	set.Legend = style.LegendFields{
		Location: s.legendSelect.Selected,
		FrameOn:  s.frameChk.Checked,
		AnchorX:  s.anchorX.Text,
		AnchorY:  s.anchorY.Text,
	}
}

// syncLimitEntries shows the limit fields as the session left them, including
// defaults written back by the last generation.
func syncLimitEntries(s *uiState) {
	set := s.session.Settings
	s.xMin.SetText(set.XLimits.Min)
	s.xMax.SetText(set.XLimits.Max)
	s.yMin.SetText(set.YLimits.Min)
	s.yMax.SetText(set.YLimits.Max)
	s.y2Min.SetText(set.Y2Limits.Min)
	s.y2Max.SetText(set.Y2Limits.Max)
}

func generatePlot(s *uiState) {
	collectSettings(s)
	p, err := s.session.Generate()
	showPlan(s, p, err)
}

func resetAxes(s *uiState) {
	collectSettings(s)
	p, err := s.session.ResetAxes()
	showPlan(s, p, err)
}

// showPlan renders a fresh plan. On error the previous image stays on screen.
func showPlan(s *uiState, p *plan.RenderPlan, err error) {
	if err != nil {
		logging.Warnf("generate: %v", err)
		dialog.ShowError(err, s.window)
		return
	}
	syncLimitEntries(s)
	w, h := chartSize(s)
	img, err := render.Image(p, w, h)
	if err != nil {
		logging.Errorf("render: %v", err)
		dialog.ShowError(err, s.window)
		return
	}
	s.lastPlan = p
	setChartImage(s, img, w, h)
	savePrefs(s)
}

func setChartImage(s *uiState, img image.Image, w, h int) {
	s.chartImg.Image = img
	s.chartImg.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	s.chartImg.Refresh()
}

// chartSize sizes the chart to the space right of the controls.
func chartSize(s *uiState) (int, int) {
	if s == nil || s.window == nil || s.window.Canvas() == nil {
		return uihelpers.ComputeChartDimensions(0)
	}
	sz := s.window.Canvas().Size()
	return uihelpers.ComputeChartDimensions(int(sz.Width*0.62) - 12)
}

func exportPlot(s *uiState) {
	if s.session.Catalog == nil {
		dialog.ShowInformation("Export", "No dataset loaded.", s.window)
		return
	}
	if s.lastPlan == nil {
		generatePlot(s)
		if s.lastPlan == nil {
			return
		}
	}
	opts, err := exportOptions(s)
	if err != nil {
		dialog.ShowError(err, s.window)
		return
	}
	collectSettings(s)
	path := s.session.ExportPath(s.filename.Text)
	if err := render.Export(s.lastPlan, path, opts); err != nil {
		logging.Errorf("export: %v", err)
		dialog.ShowError(err, s.window)
		return
	}
	dialog.ShowInformation("Export", "Saved "+path, s.window)
}

func exportOptions(s *uiState) (render.ExportOptions, error) {
	opts := render.ExportOptions{Tight: s.tightChk.Checked, Transparent: s.transparentChk.Checked}
	raw := strings.TrimSpace(s.dpiEntry.Text)
	if raw == "" {
		opts.DPI = s.env.DPI
		return opts, nil
	}
	dpi, err := strconv.ParseFloat(raw, 64)
	if err != nil || dpi <= 0 {
		return opts, &plan.InvalidInputError{Field: "DPI", Value: raw, Err: err}
	}
	opts.DPI = dpi
	return opts, nil
}

// openDataset loads path into the session. A failed load keeps the current
// dataset and selections.
func openDataset(s *uiState, path string) {
	if err := s.session.Load(context.Background(), s.loader, path); err != nil {
		logging.Errorf("load %s: %v", path, err)
		dialog.ShowError(err, s.window)
		return
	}
	s.filePath = path
	s.lastPlan = nil
	s.fileLabel.SetText(truncatePath(path, 48))
	s.window.SetTitle(fmt.Sprintf("PSSE Dynamic Simulation Grapher - %s", s.session.Catalog.Title()))
	refreshChannelOptions(s)
	syncLimitEntries(s)
	w, h := chartSize(s)
	hint := fmt.Sprintf("%d channels, %d samples. %s", s.session.Catalog.ChannelCount(), s.session.Catalog.SampleCount(), generateHint)
	setChartImage(s, render.Placeholder(w, h, hint), w, h)
	addRecentFile(s, path)
	savePrefs(s)
	buildMenus(s)
}

func refreshChannelOptions(s *uiState) {
	s.xSelect.Options = s.session.Tokens()
	s.xSelect.Selected = s.session.Selections.X().Channel
	s.xSelect.Refresh()
	rebuildRows(s)
}
