package plan

import (
	"errors"
	"fmt"
)

// ErrNoXSelection is returned when generating without an X channel.
var ErrNoXSelection = errors.New("please select an X-axis variable")

// ErrNoYSelection is returned when every Y row is unset.
var ErrNoYSelection = errors.New("please select at least one Y-axis variable")

// ErrNoDataset is returned when generating before anything was loaded.
var ErrNoDataset = errors.New("no dataset loaded")

// InvalidInputError reports a display field that must be numeric but is not.
// Only the font size is reported this way; limit and anchor fields fall back
// to computed values silently.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }
