package axis

import (
	"math"
	"strconv"
	"strings"
)

// PaddingFraction is the share of the data span added on both ends of an axis.
const PaddingFraction = 0.05

// UnitPadding replaces proportional padding for constant data.
const UnitPadding = 1.0

// Bounds is a numeric [Min, Max] interval.
type Bounds struct {
	Min, Max float64
}

// Range is a resolved axis interval. UserPinned marks bounds that both came
// from parseable user input.
type Range struct {
	Min, Max   float64
	UserPinned bool
}

// Bounds drops the pinned flag.
func (r Range) Bounds() Bounds { return Bounds{Min: r.Min, Max: r.Max} }

// PaddedBounds widens an extent by PaddingFraction of its span on each side,
// or by UnitPadding when the span is zero. Invalid extents give [-1, 1].
func PaddedBounds(e Extent) Bounds {
	if !e.Valid {
		return Bounds{Min: -UnitPadding, Max: UnitPadding}
	}
	pad := (e.Max - e.Min) * PaddingFraction
	if e.Max == e.Min {
		pad = UnitPadding
	}
	return Bounds{Min: e.Min - pad, Max: e.Max + pad}
}

// DefaultBounds is PaddedBounds over the union of every sample sequence.
func DefaultBounds(samples ...[]float64) Bounds {
	exts := make([]Extent, len(samples))
	for i, s := range samples {
		exts[i] = Stats(s)
	}
	return PaddedBounds(Union(exts...))
}

// LimitFields are the editable min/max text fields of one axis.
type LimitFields struct {
	Min, Max string
}

// Empty reports whether both fields are blank.
func (f LimitFields) Empty() bool {
	return strings.TrimSpace(f.Min) == "" && strings.TrimSpace(f.Max) == ""
}

// Clear blanks both fields so the next resolution recomputes defaults.
func (f *LimitFields) Clear() { f.Min, f.Max = "", "" }

// ResolveLimits combines computed bounds with what the user typed.
//
// Each bound is handled on its own: a parseable entry wins, an unparseable
// entry is ignored in favor of the computed value and left as typed, and a
// blank entry takes the computed value, which is also written into the field
// so it can be tuned by hand afterwards. Existing text is never overwritten.
func ResolveLimits(fields *LimitFields, computed Bounds) Range {
	if fields == nil {
		return Range{Min: computed.Min, Max: computed.Max}
	}
	min, minUser := resolveBound(&fields.Min, computed.Min)
	max, maxUser := resolveBound(&fields.Max, computed.Max)
	return Range{Min: min, Max: max, UserPinned: minUser && maxUser}
}

func resolveBound(field *string, computed float64) (float64, bool) {
	if strings.TrimSpace(*field) == "" {
		*field = FormatLimit(computed)
		return computed, false
	}
	if v, ok := ParseFloatField(*field); ok {
		return v, true
	}
	return computed, false
}

// ParseFloatField parses a trimmed numeric text field. NaN and infinities are rejected.
func ParseFloatField(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatLimit renders a bound the way it is written back into a limit field.
func FormatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
