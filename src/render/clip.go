package render

import "math"

// polyline is a run of connected points.
type polyline struct {
	xs, ys []float64
}

type rect struct {
	xmin, xmax, ymin, ymax float64
}

// clipPolylines splits a series into drawable runs: NaN or infinite samples
// break the line, and every segment is clipped to r so nothing is drawn past
// the axes when the user pinned limits tighter than the data.
func clipPolylines(xs, ys []float64, r rect) []polyline {
	var out []polyline
	var cur *polyline
	flush := func() {
		if cur != nil && len(cur.xs) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 1 && finite(xs[0], ys[0]) && r.contains(xs[0], ys[0]) {
		return []polyline{{xs: []float64{xs[0]}, ys: []float64{ys[0]}}}
	}
	for i := 1; i < n; i++ {
		x0, y0, x1, y1 := xs[i-1], ys[i-1], xs[i], ys[i]
		if !finite(x0, y0) || !finite(x1, y1) {
			flush()
			continue
		}
		cx0, cy0, cx1, cy1, ok := r.clip(x0, y0, x1, y1)
		if !ok {
			flush()
			continue
		}
		if cur != nil {
			last := len(cur.xs) - 1
			if cur.xs[last] != cx0 || cur.ys[last] != cy0 {
				flush()
			}
		}
		if cur == nil {
			cur = &polyline{xs: []float64{cx0}, ys: []float64{cy0}}
		}
		cur.xs = append(cur.xs, cx1)
		cur.ys = append(cur.ys, cy1)
		// a clipped end leaves the box; the next segment starts a new run
		if cx1 != x1 || cy1 != y1 {
			flush()
		}
	}
	flush()
	return out
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (r rect) contains(x, y float64) bool {
	return x >= r.xmin && x <= r.xmax && y >= r.ymin && y <= r.ymax
}

// clip is Liang-Barsky segment clipping.
func (r rect) clip(x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - r.xmin, r.xmax - x0, y0 - r.ymin, r.ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	nx0, ny0 := x0, y0
	if t0 > 0 {
		nx0, ny0 = x0+t0*dx, y0+t0*dy
	}
	nx1, ny1 := x1, y1
	if t1 < 1 {
		nx1, ny1 = x0+t1*dx, y0+t1*dy
	}
	return nx0, ny0, nx1, ny1, true
}
