package loader

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
)

// XLSX reads a workbook sheet laid out like the CSV format.
type XLSX struct {
	// Sheet selects the sheet by name; empty means the first sheet.
	Sheet string
}

func (x XLSX) Load(ctx context.Context, path string) (catalog.Dataset, error) {
	if err := checkCtx(ctx, path); err != nil {
		return catalog.Dataset{}, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return catalog.Dataset{}, ioErr(path, "open", err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return catalog.Dataset{}, ioErr(path, "read", fmt.Errorf("%w: workbook has no sheets", ErrNoData))
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return catalog.Dataset{}, ioErr(path, "read", fmt.Errorf("sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("%w: sheet %q is empty", ErrNoData, sheet))
	}
	return fromTable(path, rows[0], rows[1:])
}
