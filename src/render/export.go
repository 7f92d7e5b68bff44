package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/plan"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/uihelpers"
)

// ErrExport marks failures writing the exported image.
var ErrExport = errors.New("export failed")

// Export page size in inches.
const (
	ExportWidthIn  = 10.0
	ExportHeightIn = 5.0
	DefaultDPI     = 150.0
)

// ExportOptions control the saved image.
type ExportOptions struct {
	DPI         float64
	Tight       bool
	Transparent bool
}

// Export renders p to a PNG file at path. The image is ExportWidthIn x
// ExportHeightIn inches at the requested DPI.
func Export(p *plan.RenderPlan, path string, opts ExportOptions) error {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	w, h := uihelpers.ComputeExportSize(ExportWidthIn, ExportHeightIn, dpi)
	rd := Renderer{DPI: dpi, Tight: opts.Tight, Transparent: opts.Transparent}
	var buf bytes.Buffer
	if err := rd.WritePNG(&buf, p, w, h); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrExport, path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrExport, path, err)
	}
	logging.Infof("exported %s (%dx%d @ %.0f dpi)", path, w, h, dpi)
	return nil
}
