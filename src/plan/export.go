package plan

import (
	"path/filepath"
	"regexp"
	"strings"
)

// FallbackFilename is used when neither a filename nor a title is given.
const FallbackFilename = "dynamic_plot"

// unsafeRun matches runs of characters not allowed in exported file names.
var unsafeRun = regexp.MustCompile(`[\\/*?:"<>| ]+`)

// SanitizeFilename replaces each run of unsafe characters with a single
// underscore and appends the .png extension.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".png")
	return unsafeRun.ReplaceAllString(name, "_") + ".png"
}

// ExportPath places the exported image next to the dataset. An empty filename
// falls back to the title, then to FallbackFilename.
func ExportPath(datasetDir, filename, title string) string {
	name := firstNonBlank(filename, title, FallbackFilename)
	return filepath.Join(datasetDir, SanitizeFilename(name))
}

// ExportPath resolves the export destination for the loaded dataset.
func (s *Session) ExportPath(filename string) string {
	return ExportPath(s.Catalog.Dir(), filename, s.Settings.Title)
}
