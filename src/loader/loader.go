// Package loader turns simulation exports into catalog datasets. PSSE .out
// files are converted to one of the supported table formats beforehand; this
// package only reads the converted tables.
package loader

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
	"github.com/rbojorquezs/psse-dyn-visualizer/src/logging"
)

// ErrUnsupportedFormat is wrapped when no loader handles a file extension.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrNoData is wrapped when a file has a header but no channel data.
var ErrNoData = errors.New("no channel data")

// IOError is the single failure type of every loader. The message is shown to
// the user verbatim; the previous dataset stays loaded.
type IOError struct {
	Path string
	Op   string // "open", "read", "parse"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func ioErr(path, op string, err error) *IOError {
	return &IOError{Path: path, Op: op, Err: err}
}

// Loader reads one dataset from path.
type Loader interface {
	Load(ctx context.Context, path string) (catalog.Dataset, error)
}

// Func adapts a function to Loader.
type Func func(ctx context.Context, path string) (catalog.Dataset, error)

func (f Func) Load(ctx context.Context, path string) (catalog.Dataset, error) { return f(ctx, path) }

// ByExtension dispatches on the lower-cased file extension.
type ByExtension map[string]Loader

// Default handles .csv, .txt (comma separated), .xlsx and .json.
func Default() ByExtension {
	return ByExtension{
		".csv":  CSV{},
		".txt":  CSV{},
		".xlsx": XLSX{},
		".json": JSON{},
	}
}

// Extensions lists the handled extensions, for file dialogs.
func (b ByExtension) Extensions() []string {
	out := make([]string, 0, len(b))
	for _, ext := range []string{".csv", ".txt", ".xlsx", ".json"} {
		if _, ok := b[ext]; ok {
			out = append(out, ext)
		}
	}
	return out
}

func (b ByExtension) Load(ctx context.Context, path string) (catalog.Dataset, error) {
	defer logging.TimeTrack(time.Now(), "load "+filepath.Base(path))
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := b[ext]
	if !ok {
		return catalog.Dataset{}, ioErr(path, "open", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}
	ds, err := l.Load(ctx, path)
	if err != nil {
		return catalog.Dataset{}, err
	}
	logging.Infof("loaded %s: %d channels, %d samples", path, len(ds.Data), len(ds.Time))
	return ds, nil
}

var headerWithID = regexp.MustCompile(`^\s*(\d+)\s*:\s*(.*?)\s*$`)

// fromTable builds a dataset from a header row and string cells, the common
// layout of CSV and XLSX exports: an optional "time" column followed by one
// column per channel headed "<id>: <description>" or just a description, in
// which case channels are numbered by column position.
func fromTable(path string, header []string, rows [][]string) (catalog.Dataset, error) {
	if len(header) == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("%w: empty header", ErrNoData))
	}
	ds := catalog.Dataset{
		Title:        titleFromPath(path),
		Path:         path,
		Descriptions: map[int]string{},
		Data:         map[int][]float64{},
	}
	timeCol := -1
	colID := make([]int, len(header))
	next := 1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if timeCol < 0 && isTimeHeader(h, i) {
			timeCol = i
			colID[i] = -1
			continue
		}
		id, desc := next, h
		if m := headerWithID.FindStringSubmatch(h); m != nil {
			id, _ = strconv.Atoi(m[1])
			desc = m[2]
		}
		if _, dup := ds.Descriptions[id]; dup {
			return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("duplicate channel id %d in column %d", id, i+1))
		}
		ds.Descriptions[id] = desc
		colID[i] = id
		if id >= next {
			next = id + 1
		}
	}
	if len(ds.Descriptions) == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("%w: only a time column", ErrNoData))
	}
	for r, row := range rows {
		if blankRow(row) {
			continue
		}
		for i := range header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			v, err := parseCell(cell)
			if err != nil {
				return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("row %d column %d: %w", r+2, i+1, err))
			}
			if i == timeCol {
				ds.Time = append(ds.Time, v)
				continue
			}
			ds.Data[colID[i]] = append(ds.Data[colID[i]], v)
		}
	}
	n := 0
	for _, s := range ds.Data {
		n = len(s)
		break
	}
	if n == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", ErrNoData)
	}
	if timeCol < 0 {
		ds.Time = make([]float64, n)
		for i := range ds.Time {
			ds.Time[i] = float64(i)
		}
	}
	return ds, nil
}

// isTimeHeader accepts "time" anywhere and "Time (s)"-like headers in the first column.
func isTimeHeader(h string, col int) bool {
	if strings.EqualFold(h, catalog.TimeToken) {
		return true
	}
	return col == 0 && strings.HasPrefix(strings.ToLower(h), "time")
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func checkCtx(ctx context.Context, path string) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return ioErr(path, "open", err)
	}
	return nil
}
