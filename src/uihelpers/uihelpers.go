package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions applies width/height clamp rules used for the on-screen chart.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height (~2:1).
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 640 {
		w = 640
	}
	h := int(float32(w) * 0.5)
	if h < 320 {
		h = 320
	}
	if h > 720 {
		h = 720
	}
	return w, h
}

// ComputeExportSize converts a figure size in inches to pixels at dpi.
// Non-positive dpi falls back to 100.
func ComputeExportSize(widthIn, heightIn, dpi float64) (int, int) {
	if dpi <= 0 {
		dpi = 100
	}
	return int(math.Round(widthIn * dpi)), int(math.Round(heightIn * dpi))
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// round6 rounds to 6 decimal places to stabilize test comparisons / labels prep.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a 1,2,2.5,5 pattern.
// The first tick may sit below min and the last above max.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := pow10Floor(span / float64(n-1))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// TicksWithin is BuildNumericTicks restricted to [min,max], for axes whose
// bounds are fixed (user limits or padded defaults) rather than rounded out.
func TicksWithin(min, max float64, n int) []float64 {
	if min > max {
		min, max = max, min
	}
	eps := (max - min) * 1e-9
	var out []float64
	for _, v := range BuildNumericTicks(min, max, n) {
		if v >= min-eps && v <= max+eps {
			out = append(out, v)
		}
	}
	return out
}

// FormatNumericTick provides a compact tick label.
func FormatNumericTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av == 0:
		return "0"
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
}
