package pathmetrics

import (
	"iter"
	"math"
)

// Divide returns an iterator over the n+1 points that divide the path into n pieces
// of identical length, starting with the path's first point and ending with its last
// point. Nothing is yielded if n < 1 or the path is empty.
func (t *LengthTable) Divide(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 || t.Empty() {
			return
		}
		for i := 0; i <= n; i++ {
			if !yield(t.PointAtPercent(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// Every returns an iterator over the points at lengths 0, step, 2·step, and so on,
// up to the length of the path. Nothing is yielded if step isn't positive and
// finite, or if the path is empty.
func (t *LengthTable) Every(step float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if !(step > 0) || math.IsInf(step, 1) || t.Empty() {
			return
		}
		total := t.Length()
		for i := 0; ; i++ {
			l := float64(i) * step
			if l > total {
				return
			}
			if !yield(t.PointAtLength(l)) {
				return
			}
		}
	}
}
