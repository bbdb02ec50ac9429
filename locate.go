package pathmetrics

import (
	"math"
	"sort"
)

// PointAtPercent returns the point that lies at the given fraction of the path's
// total length. percent is clamped to [0, 1]; NaN is treated as 0.
//
// A percent of 0 returns the path's first point and a percent of 1 returns its last
// point, exactly. The last point is the end of the path's final segment: for a path
// that ends in a move, that is the move's point, while percentages just below 1 still
// land on the drawn segment before it. If the path has a total length of 0, its first point is returned
// for every percent. For an empty path, which has no points, the origin is
// returned; use [LengthTable.Empty] to tell the two apart.
func (t *LengthTable) PointAtPercent(percent float64) Point {
	if len(t.samples) == 0 {
		return Point{}
	}
	percent = clamp(percent, 0, 1)
	total := t.Length()
	if total == 0 || percent == 0 {
		return t.samples[0].Point
	}
	if percent == 1 {
		return t.samples[len(t.samples)-1].Point
	}
	return t.pointAt(percent * total)
}

// PointAtLength returns the point that lies at distance l along the path, measured
// from its start. l is clamped to [0, Length()]; NaN is treated as 0. Empty paths
// and paths of zero length behave like they do for [LengthTable.PointAtPercent].
func (t *LengthTable) PointAtLength(l float64) Point {
	if len(t.samples) == 0 {
		return Point{}
	}
	total := t.Length()
	if total == 0 {
		return t.samples[0].Point
	}
	l = clamp(l, 0, total)
	if l == 0 {
		return t.samples[0].Point
	}
	if l == total {
		return t.samples[len(t.samples)-1].Point
	}
	return t.pointAt(l)
}

// pointAt interpolates the point at length target, which must be in [0, Length()].
// Lengths that overflowed to infinity can't be interpolated; the sample before the
// target is returned instead.
func (t *LengthTable) pointAt(target float64) Point {
	i := sort.Search(len(t.samples), func(i int) bool {
		return t.samples[i].Length >= target
	})
	if i == 0 {
		return t.samples[0].Point
	}
	if i == len(t.samples) {
		// Only reachable through rounding.
		return t.samples[len(t.samples)-1].Point
	}
	a, b := t.samples[i-1], t.samples[i]
	span := b.Length - a.Length
	u := (target - a.Length) / span
	if math.IsInf(span, 0) || !(u >= 0 && u <= 1) {
		// Also covers span == 0.
		return a.Point
	}
	return a.Point.Lerp(b.Point, u)
}

// clamp clamps v to [lo, hi], mapping NaN to lo.
func clamp(v, lo, hi float64) float64 {
	switch {
	case !(v >= lo):
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
