// Package axis decides which Y axis every series is drawn against and what
// numeric bounds each axis gets.
package axis

import (
	"math"
	"sort"
)

// DualAxisThreshold is the fraction of the largest series range below which a
// series is moved to the right axis.
const DualAxisThreshold = 0.1

// Side identifies one of the two Y axes.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Extent is the finite min/max of a sample sequence. Valid is false when the
// sequence had no finite values.
type Extent struct {
	Min, Max float64
	Valid    bool
}

// Range is Max-Min, zero for invalid extents.
func (e Extent) Range() float64 {
	if !e.Valid {
		return 0
	}
	return e.Max - e.Min
}

// Stats scans samples, skipping NaN and infinities.
func Stats(samples []float64) Extent {
	e := Extent{Min: math.MaxFloat64, Max: -math.MaxFloat64}
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < e.Min {
			e.Min = v
		}
		if v > e.Max {
			e.Max = v
		}
		e.Valid = true
	}
	if !e.Valid {
		return Extent{}
	}
	return e
}

// Union merges extents, ignoring invalid ones.
func Union(exts ...Extent) Extent {
	var out Extent
	for _, e := range exts {
		if !e.Valid {
			continue
		}
		if !out.Valid {
			out = e
			continue
		}
		out.Min = math.Min(out.Min, e.Min)
		out.Max = math.Max(out.Max, e.Max)
	}
	return out
}

// Series is the partitioning input for one resolved Y selection.
type Series struct {
	Label   string
	Samples []float64
}

// DualAllowed reports whether a dual-axis request can be honored: the dataset
// must expose at least two channels and at least two Y series must be plotted.
func DualAllowed(channelCount, seriesCount int) bool {
	return channelCount >= 2 && seriesCount >= 2
}

// Partition assigns each series to an axis and returns the sides in the input
// order. With dual off, or fewer than two series, everything is Left.
//
// Series are ranked by range (max-min), largest first, ties keeping input
// order. The largest goes Left and sets base; every other series stays Left
// when its range is at least DualAxisThreshold*base and goes Right otherwise.
// A constant largest series makes base zero, so nothing goes Right.
func Partition(series []Series, dual bool) []Side {
	sides := make([]Side, len(series))
	if !dual || len(series) < 2 {
		return sides
	}
	ranges := make([]float64, len(series))
	order := make([]int, len(series))
	for i, s := range series {
		ranges[i] = Stats(s.Samples).Range()
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ranges[order[a]] > ranges[order[b]] })

	base := ranges[order[0]]
	for _, i := range order[1:] {
		if ranges[i] < DualAxisThreshold*base {
			sides[i] = Right
		}
	}
	return sides
}

// HasRight reports whether any side is Right.
func HasRight(sides []Side) bool {
	for _, s := range sides {
		if s == Right {
			return true
		}
	}
	return false
}
