package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/loader"
)

// menus and dialogs
func buildMenus(s *uiState) {
	if s == nil || s.window == nil || s.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(s) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() { openDataset(s, f) }))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(s); buildMenus(s) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(s) }),
		fyne.NewMenuItem("Reload", func() {
			if s.filePath != "" {
				openDataset(s, s.filePath)
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG", func() { exportPlot(s) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { s.window.Close() }),
	)
	plotMenu := fyne.NewMenu("Plot",
		fyne.NewMenuItem("Generate", func() { generatePlot(s) }),
		fyne.NewMenuItem("Reset Axes", func() { resetAxes(s) }),
		fyne.NewMenuItem("Add Series", func() { addSeriesRow(s) }),
	)
	s.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu, plotMenu))

	canv := s.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(s) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyG, Modifier: mod}, func(fyne.Shortcut) { generatePlot(s) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) { exportPlot(s) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { s.window.Close() })
		}
	}
}

// file open dialog
func openFileDialog(s *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		_ = rc.Close()
		openDataset(s, path)
	}, s.window)
	if b, ok := s.loader.(loader.ByExtension); ok {
		d.SetFilter(storage.NewExtensionFileFilter(b.Extensions()))
	}
	d.Show()
}
