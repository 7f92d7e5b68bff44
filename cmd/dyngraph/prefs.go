package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/style"
)

const maxRecentFiles = 10

func recentFiles(s *uiState) []string {
	raw := s.app.Preferences().StringWithFallback("recentFiles", "")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func addRecentFile(s *uiState, path string) {
	list := recentFiles(s)
	filtered := []string{path}
	for _, f := range list {
		if f != path && len(filtered) < maxRecentFiles {
			filtered = append(filtered, f)
		}
	}
	s.app.Preferences().SetString("recentFiles", strings.Join(filtered, "\n"))
}

func clearRecentFiles(s *uiState) {
	if s == nil || s.app == nil {
		return
	}
	s.app.Preferences().SetString("recentFiles", "")
}

// savePrefs stores the last file and display options. Limits, labels and
// series choices belong to the dataset and are not kept.
func savePrefs(s *uiState) {
	if s == nil || s.app == nil {
		return
	}
	prefs := s.app.Preferences()
	prefs.SetString("lastFile", s.filePath)
	prefs.SetString("fontFamily", s.fontSelect.Selected)
	prefs.SetString("fontSize", s.fontSize.Text)
	prefs.SetBool("grid", s.gridChk.Checked)
	prefs.SetBool("dualAxis", s.dualChk.Checked)
	prefs.SetString("legendLocation", s.legendSelect.Selected)
	prefs.SetBool("legendFrame", s.frameChk.Checked)
	prefs.SetString("exportDPI", s.dpiEntry.Text)
	prefs.SetBool("exportTight", s.tightChk.Checked)
	prefs.SetBool("exportTransparent", s.transparentChk.Checked)
}

func loadPrefs(s *uiState) {
	if s == nil || s.app == nil {
		return
	}
	prefs := s.app.Preferences()
	if f := prefs.StringWithFallback("lastFile", s.filePath); f != "" {
		if _, err := os.Stat(f); err == nil {
			s.filePath = f
		}
	}
	if s.env.Font == "" {
		if f := prefs.StringWithFallback("fontFamily", s.fontSelect.Selected); f != "" {
			s.fontSelect.SetSelected(f)
		}
	}
	if fs := prefs.StringWithFallback("fontSize", s.fontSize.Text); fs != "" {
		if n, err := strconv.Atoi(fs); err == nil && n > 0 {
			s.fontSize.SetText(fs)
		}
	}
	s.gridChk.SetChecked(prefs.BoolWithFallback("grid", s.gridChk.Checked))
	s.dualChk.SetChecked(prefs.BoolWithFallback("dualAxis", s.dualChk.Checked))
	if loc, ok := style.ParseLocation(prefs.StringWithFallback("legendLocation", s.legendSelect.Selected)); ok {
		s.legendSelect.SetSelected(string(loc))
	}
	s.frameChk.SetChecked(prefs.BoolWithFallback("legendFrame", s.frameChk.Checked))
	if s.env.DPI <= 0 {
		if d := prefs.StringWithFallback("exportDPI", s.dpiEntry.Text); d != "" {
			s.dpiEntry.SetText(d)
		}
	}
	s.tightChk.SetChecked(prefs.BoolWithFallback("exportTight", s.tightChk.Checked))
	s.transparentChk.SetChecked(prefs.BoolWithFallback("exportTransparent", s.transparentChk.Checked))
}

// utils
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	base := filepath.Base(p)
	if len(base)+4 >= n {
		return "..." + base
	}
	dir := filepath.Dir(p)
	left := n - len(base) - 4
	if len(dir) > left {
		dir = dir[:left]
	}
	return dir + "/..." + base
}
