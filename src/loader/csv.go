package loader

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
)

// CSV reads comma separated tables. Lines starting with '#' are comments.
type CSV struct {
	// Comma overrides the separator (default ',').
	Comma rune
}

func (c CSV) Load(ctx context.Context, path string) (catalog.Dataset, error) {
	if err := checkCtx(ctx, path); err != nil {
		return catalog.Dataset{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return catalog.Dataset{}, ioErr(path, "open", err)
	}
	defer f.Close()
	return c.read(f, path)
}

func (c CSV) read(r io.Reader, path string) (catalog.Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if c.Comma != 0 {
		cr.Comma = c.Comma
	}
	records, err := cr.ReadAll()
	if err != nil {
		return catalog.Dataset{}, ioErr(path, "read", err)
	}
	if len(records) == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", ErrNoData)
	}
	return fromTable(path, records[0], records[1:])
}
