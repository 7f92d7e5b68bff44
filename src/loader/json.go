package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/catalog"
)

// JSON reads the dump format of the channel extraction script:
//
//	{"title": "...", "channels": {"2": "VOLT 5"}, "data": {"time": [...], "2": [...]}}
type JSON struct{}

type jsonDump struct {
	Title    string               `json:"title"`
	Channels map[string]string    `json:"channels"`
	Data     map[string][]float64 `json:"data"`
}

func (JSON) Load(ctx context.Context, path string) (catalog.Dataset, error) {
	if err := checkCtx(ctx, path); err != nil {
		return catalog.Dataset{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return catalog.Dataset{}, ioErr(path, "open", err)
	}
	var dump jsonDump
	if err := json.Unmarshal(b, &dump); err != nil {
		return catalog.Dataset{}, ioErr(path, "parse", err)
	}
	ds := catalog.Dataset{
		Title:        strings.TrimSpace(dump.Title),
		Path:         path,
		Descriptions: map[int]string{},
		Data:         map[int][]float64{},
	}
	if ds.Title == "" {
		ds.Title = titleFromPath(path)
	}
	for k, desc := range dump.Channels {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("channel key %q is not an integer", k))
		}
		ds.Descriptions[id] = desc
	}
	for k, samples := range dump.Data {
		if strings.EqualFold(strings.TrimSpace(k), catalog.TimeToken) {
			ds.Time = samples
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return catalog.Dataset{}, ioErr(path, "parse", fmt.Errorf("data key %q is not an integer", k))
		}
		ds.Data[id] = samples
	}
	if len(ds.Data) == 0 {
		return catalog.Dataset{}, ioErr(path, "parse", ErrNoData)
	}
	return ds, nil
}
